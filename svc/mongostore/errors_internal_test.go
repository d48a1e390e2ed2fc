package mongostore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/storekit/pkg/tenant"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		err     error
		want    error
		notWant error
	}{
		{name: "no documents", err: mongo.ErrNoDocuments, want: tenant.ErrStoreNotFound},
		{name: "deadline", err: context.DeadlineExceeded, want: tenant.ErrUnavailable, notWant: tenant.ErrStoreNotFound},
		{name: "cancelled", err: context.Canceled, want: tenant.ErrUnavailable, notWant: tenant.ErrStoreNotFound},
		{name: "other", err: errBoom, want: errBoom, notWant: tenant.ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := classify("find store", tt.err, tenant.ErrStoreNotFound, tenant.ErrUnavailable)
			assert.ErrorIs(t, got, tt.want)
			if tt.notWant != nil {
				assert.NotErrorIs(t, got, tt.notWant)
			}
		})
	}

	assert.NoError(t, classify("noop", nil, tenant.ErrStoreNotFound, tenant.ErrUnavailable))
	assert.NotErrorIs(t, classify("save", mongo.ErrNoDocuments, nil, nil), tenant.ErrStoreNotFound)
}
