package mongo

import (
	"errors"
	"testing"

	"github.com/aussiebroadwan/carbon/internal/carbon/store"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestDatabaseName(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"mongodb://localhost:27017", DefaultDatabase},
		{"mongodb://localhost:27017/", DefaultDatabase},
		{"mongodb://u:p@localhost:27017/emissions?authSource=admin", "emissions"},
		{"mongodb+srv://cluster0.example.net/prod", "prod"},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			got, err := databaseName(tt.uri)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := databaseName("mongodb://bad host:%%")
	require.Error(t, err)
}

func dupErr(index string) error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{
		Code:    11000,
		Message: "E11000 duplicate key error collection: carbon.users index: " + index + " dup key",
	}}}
}

func TestMapDuplicateKey(t *testing.T) {
	require.ErrorIs(t, mapDuplicateKey(dupErr(emailIndex)), store.ErrEmailTaken)
	require.ErrorIs(t, mapDuplicateKey(dupErr(usernameIndex)), store.ErrUsernameTaken)
	require.ErrorIs(t, mapDuplicateKey(dupErr("_id_")), store.ErrAlreadyExists)

	other := errors.New("boom")
	require.Equal(t, other, mapDuplicateKey(other))
	require.NoError(t, mapDuplicateKey(nil))
}

func TestMapNotFound(t *testing.T) {
	require.ErrorIs(t, mapNotFound(mongo.ErrNoDocuments), store.ErrNotFound)
	require.NoError(t, mapNotFound(nil))
}
