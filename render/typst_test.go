package render

import (
	"testing"
	"time"

	"github.com/rickchristie/vitae"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypst_Render_Nodes(t *testing.T) {
	cases := []struct {
		name string
		in   vitae.Content
		want string
	}{
		{"nil", nil, ""},
		{"str", vitae.Str{Value: "plain"}, "plain"},
		{"str escaping", vitae.Str{Value: "C# _dev_ [x]"}, `C\# \_dev\_ \[x\]`},
		{"raw passthrough", vitae.Raw{Markup: "#smallcaps[Present]"}, "#smallcaps[Present]"},
		{"emph", vitae.Emph{Body: vitae.Str{Value: "Owner"}}, "#emph[Owner]"},
		{"strong", vitae.Strong{Body: vitae.Str{Value: "Work"}}, "#strong[Work]"},
		{"hfill", vitae.HFill{}, "#h(1fr)"},
		{"linebreak", vitae.Linebreak{}, "#linebreak()"},
		{"block", vitae.Block{Body: vitae.Str{Value: "body"}}, "#block[body]"},
		{
			name: "seq concatenates",
			in: vitae.Seq{Items: []vitae.Content{
				vitae.Str{Value: "a"},
				vitae.Str{Value: "b"},
			}},
			want: "ab",
		},
		{
			name: "list without marker",
			in: vitae.BulletList{Items: []vitae.Content{
				vitae.Str{Value: "a"},
				vitae.Str{Value: "b"},
			}},
			want: "#list([a], [b])",
		},
		{
			name: "list with marker",
			in: vitae.BulletList{
				Marker: "◆",
				Items:  []vitae.Content{vitae.Str{Value: "a"}},
			},
			want: "#list(marker: [◆], [a])",
		},
	}

	r := NewTypst()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Render(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTypst_Render_FormattedExperience(t *testing.T) {
	exp := vitae.WorkExperience{
		Position: vitae.Text("Owner"),
		Company:  vitae.Text("Lemonade Stand LLC"),
		Start:    vitae.Date(vitae.NewDate(2042, time.January, 1)),
		Body:     vitae.Str{Value: "Sold lemonade."},
	}
	content := vitae.NewExperienceFormatter().Format(exp)

	got, err := NewTypst().Render(content)
	require.NoError(t, err)
	assert.Equal(t,
		"#emph[Owner], #emph[Lemonade Stand LLC]#h(1fr)Jan 2042–#block[Sold lemonade.]",
		got)
}

func TestEscapeTypst_NoSpecials(t *testing.T) {
	// Fast path: string returned unchanged.
	assert.Equal(t, "Owner — 5th St.", escapeTypst("Owner — 5th St."))
}
