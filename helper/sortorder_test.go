package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeSortOrder(t *testing.T) {
	cases := []struct {
		name     string
		saved    []string
		defaults []string
		want     []string
	}{
		{
			name:     "no saved order keeps defaults",
			saved:    nil,
			defaults: []string{"1", "2", "3"},
			want:     []string{"1", "2", "3"},
		},
		{
			name:     "saved order wins for known ids",
			saved:    []string{"3", "1", "2"},
			defaults: []string{"1", "2", "3"},
			want:     []string{"3", "1", "2"},
		},
		{
			name:     "removed ids drop out",
			saved:    []string{"9", "2", "1"},
			defaults: []string{"1", "2"},
			want:     []string{"2", "1"},
		},
		{
			name:     "new ids append in default order",
			saved:    []string{"2", "1"},
			defaults: []string{"1", "2", "3", "4"},
			want:     []string{"2", "1", "3", "4"},
		},
		{
			name:     "duplicate saved ids collapse",
			saved:    []string{"2", "2", "1"},
			defaults: []string{"1", "2"},
			want:     []string{"2", "1"},
		},
		{
			name:     "both empty",
			saved:    nil,
			defaults: nil,
			want:     []string{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MergeSortOrder(tc.saved, tc.defaults))
		})
	}
}
