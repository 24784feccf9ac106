package extract

import (
	"testing"

	"github.com/gdrivehub/YTLinkerBot/internal/models"

	"github.com/google/go-cmp/cmp"
)

func TestLinks(t *testing.T) {

	tests := []struct {
		name     string
		input    string
		expected models.Links
	}{
		{
			"single link",
			"Visit https://example.com/page for more",
			models.Links{"https://example.com/page"},
		},
		{
			"trailing punctuation",
			"Visit https://a.com/x. Also https://b.com/y),",
			models.Links{"https://a.com/x", "https://b.com/y"},
		},
		{
			"stacked punctuation",
			"(see https://a.com/x.):!",
			models.Links{"https://a.com/x"},
		},
		{
			"deduplication",
			"https://a.com https://a.com",
			models.Links{"https://a.com"},
		},
		{
			"dedup after cleanup",
			"https://a.com/x, and again https://a.com/x",
			models.Links{"https://a.com/x"},
		},
		{
			"order of first appearance",
			"https://b.com then https://a.com then https://b.com",
			models.Links{"https://b.com", "https://a.com"},
		},
		{
			"angle brackets and quotes delimit",
			`<https://a.com/x> and "https://b.com/y"`,
			models.Links{"https://a.com/x", "https://b.com/y"},
		},
		{
			"uppercase scheme",
			"HTTPS://A.COM/X",
			models.Links{"HTTPS://A.COM/X"},
		},
		{
			"query strings survive",
			"https://a.com/x?k=v&t=1 done",
			models.Links{"https://a.com/x?k=v&t=1"},
		},
		{
			"plain http ignored",
			"http://insecure.com and nothing else",
			nil,
		},
		{
			"no links",
			"nothing to see here",
			nil,
		},
		{
			"empty text",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Links(tt.input)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Links() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Same input, same output, no matter how many times it runs
func TestLinksDeterministic(t *testing.T) {

	text := "https://a.com/x. Then https://b.com and https://a.com/x again"

	first := Links(text)
	for range 10 {
		if diff := cmp.Diff(first, Links(text)); diff != "" {
			t.Fatalf("Links() not deterministic (-first +later):\n%s", diff)
		}
	}
}
