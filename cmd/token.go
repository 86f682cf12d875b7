package cmd

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

func Token() error {
	client, err := newClient(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	if err := client.AcquireToken(context.Background()); err != nil {
		return fmt.Errorf("failed to acquire access token: %w", err)
	}

	return printJSON(client.AccessToken())
}
