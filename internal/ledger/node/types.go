package node

import (
	"net/http"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// HTTPDoer executes HTTP requests. *http.Client satisfies it.
	HTTPDoer interface {
		Do(req *http.Request) (*http.Response, error)
	}

	// Metrics records metrics for node API calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
