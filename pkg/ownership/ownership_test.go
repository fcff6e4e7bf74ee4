package ownership_test

import (
	"testing"

	"RecipeHub-Backend/pkg/ownership"

	"github.com/stretchr/testify/assert"
)

func TestIsOwner(t *testing.T) {
	tests := []struct {
		name    string
		actorID string
		ownerID string
		want    bool
	}{
		{
			name:    "identical uuids",
			actorID: "3f2c8a1e-9b7d-4c6a-8e5f-1a2b3c4d5e6f",
			ownerID: "3f2c8a1e-9b7d-4c6a-8e5f-1a2b3c4d5e6f",
			want:    true,
		},
		{
			name:    "case differs",
			actorID: "3F2C8A1E-9B7D-4C6A-8E5F-1A2B3C4D5E6F",
			ownerID: "3f2c8a1e-9b7d-4c6a-8e5f-1a2b3c4d5e6f",
			want:    true,
		},
		{
			name:    "surrounding whitespace",
			actorID: "  3f2c8a1e-9b7d-4c6a-8e5f-1a2b3c4d5e6f\n",
			ownerID: "3f2c8a1e-9b7d-4c6a-8e5f-1a2b3c4d5e6f",
			want:    true,
		},
		{
			name:    "different principals",
			actorID: "3f2c8a1e-9b7d-4c6a-8e5f-1a2b3c4d5e6f",
			ownerID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
			want:    false,
		},
		{
			name:    "empty actor",
			actorID: "",
			ownerID: "3f2c8a1e-9b7d-4c6a-8e5f-1a2b3c4d5e6f",
			want:    false,
		},
		{
			name:    "empty owner",
			actorID: "3f2c8a1e-9b7d-4c6a-8e5f-1a2b3c4d5e6f",
			ownerID: "",
			want:    false,
		},
		{
			name:    "both empty never match",
			actorID: "",
			ownerID: "",
			want:    false,
		},
		{
			name:    "short tokens never match even when equal",
			actorID: "abc123",
			ownerID: "abc123",
			want:    false,
		},
		{
			name:    "whitespace-only ids",
			actorID: "   ",
			ownerID: "   ",
			want:    false,
		},
		{
			name:    "nine chars is still too short",
			actorID: "123456789",
			ownerID: "123456789",
			want:    false,
		},
		{
			name:    "ten chars is the floor",
			actorID: "1234567890",
			ownerID: "1234567890",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ownership.IsOwner(tt.actorID, tt.ownerID))
		})
	}
}

func TestValidID(t *testing.T) {
	assert.False(t, ownership.ValidID(""))
	assert.False(t, ownership.ValidID("  short  "))
	assert.True(t, ownership.ValidID("3f2c8a1e-9b7d-4c6a-8e5f-1a2b3c4d5e6f"))
	assert.True(t, ownership.ValidID(" 1234567890 "))
}

func TestNormalize(t *testing.T) {
	got, ok := ownership.Normalize("  ABCDEF1234  ")
	assert.True(t, ok)
	assert.Equal(t, "abcdef1234", got)

	got, ok = ownership.Normalize(" AB ")
	assert.False(t, ok)
	assert.Equal(t, "ab", got)
}
