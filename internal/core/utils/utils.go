package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

func HashJSON(jsonData any) string {
	data, _ := json.Marshal(jsonData)
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// ToJSON renders a value for audit snapshots. A nil value becomes an empty
// object so "before" of a create and "after" of a delete stay non-empty.
func ToJSON(value any) string {
	if value == nil {
		return "{}"
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "{}"
	}
	return string(data)
}

type contextKey string

const actorContextKey contextKey = "actor"

const DefaultActor = "system"

func WithActor(ctx context.Context, actor string) context.Context {
	if actor == "" {
		return ctx
	}
	return context.WithValue(ctx, actorContextKey, actor)
}

func ActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(actorContextKey).(string); ok && actor != "" {
		return actor
	}
	return DefaultActor
}
