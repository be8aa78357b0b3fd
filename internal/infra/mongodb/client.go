// Package mongodb keeps word entries in a MongoDB collection.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/aliskhannn/wordbook/internal/domain"
)

// Server error codes reported for rejected credentials or missing privileges.
const (
	codeUnauthorized         = 13
	codeAuthenticationFailed = 18
)

// Connect creates a client for uri and checks that the deployment answers.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", wrapError(err))
	}

	return client, nil
}

// isUnauthorized reports whether the server rejected the operation for lack of rights.
func isUnauthorized(err error) bool {
	var serverErr mongo.ServerError
	if !errors.As(err, &serverErr) {
		return false
	}
	return serverErr.HasErrorCode(codeUnauthorized) || serverErr.HasErrorCode(codeAuthenticationFailed)
}

// wrapError marks authorization failures with domain.ErrUnauthorized.
func wrapError(err error) error {
	if err == nil || !isUnauthorized(err) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
}
