package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromotionActiveAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name  string
		promo Promotion
		want  bool
	}{
		{name: "active without expiry", promo: Promotion{Active: true}, want: true},
		{name: "active before expiry", promo: Promotion{Active: true, ExpiryDate: &future}, want: true},
		{name: "active but expired", promo: Promotion{Active: true, ExpiryDate: &past}, want: false},
		{name: "inactive", promo: Promotion{Active: false, ExpiryDate: &future}, want: false},
		{name: "expiring right now still counts", promo: Promotion{Active: true, ExpiryDate: &now}, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.promo.ActiveAt(now))
		})
	}
}
