package officials

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/club-officials-api/internal/models"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   *models.Assignment
		want Violation
	}{
		{name: "empty slot", in: nil},
		{name: "proposed", in: proposed("Matti")},
		{name: "guardian confirmed", in: guardianConfirmed("Matti", "Eeva")},
		{name: "pool without confirmer", in: poolConfirmed("Matti", nil)},
		{name: "pool with confirmer", in: poolConfirmed("Matti", strPtr("Jukka"))},
		{name: "blank player", in: proposed("   "), want: EmptyPlayerName},
		{name: "guardian without confirmer", in: &models.Assignment{PlayerName: "Matti", HandledBy: handled(models.HandledByGuardian)}, want: MissingConfirmerForGuardian},
		{name: "guardian blank confirmer", in: guardianConfirmed("Matti", " "), want: MissingConfirmerForGuardian},
		{name: "confirmer without handler", in: &models.Assignment{PlayerName: "Matti", ConfirmedBy: strPtr("Eeva")}, want: UnexpectedConfirmer},
		{name: "unknown handler", in: &models.Assignment{PlayerName: "Matti", HandledBy: handled("coach")}, want: UnknownHandler},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.in)
			if tc.want == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.want, verr.Violation)
		})
	}
}

func TestNormalize(t *testing.T) {
	out := Normalize(poolConfirmed("  Matti ", strPtr("   ")))
	assert.Equal(t, "Matti", out.PlayerName)
	assert.Nil(t, out.ConfirmedBy)

	guardian := Normalize(guardianConfirmed("Matti", "  "))
	require.NotNil(t, guardian.ConfirmedBy)
	assert.Equal(t, MissingConfirmerForGuardian, Validate(guardian).(*ValidationError).Violation)

	assert.Nil(t, Normalize(nil))
}
