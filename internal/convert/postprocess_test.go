// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "testing"

func TestPostprocess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "fully fenced response",
			in:   "```\n# Title\n```code```\n```",
			want: "# Title\n```code```\n",
		},
		{
			name: "opening fence only",
			in:   "```\n# Title\n",
			want: "# Title\n",
		},
		{
			name: "closing fence only",
			in:   "# Title\nbody\n```",
			want: "# Title\nbody\n",
		},
		{
			name: "language tag left behind by fence strip",
			in:   "```markdown\n# Title\n```",
			want: "markdown\n# Title\n",
		},
		{
			name: "leading blank lines",
			in:   "\n\n  \n# Title\nbody\n",
			want: "# Title\nbody\n",
		},
		{
			name: "clean content unchanged",
			in:   "# Title\n\nbody with ``inline`` ticks\n",
			want: "# Title\n\nbody with ``inline`` ticks\n",
		},
		{
			name: "interior code blocks preserved",
			in:   "# Title\n```go\nfunc main() {}\n```\nmore text\n",
			want: "# Title\n```go\nfunc main() {}\n```\nmore text\n",
		},
		{
			name: "code block fence at end of file is eaten",
			in:   "# Title\n```go\nfunc main() {}\n```",
			want: "# Title\n```go\nfunc main() {}\n",
		},
		{
			name: "bare fence",
			in:   "```",
			want: "",
		},
		{
			name: "two bare fences",
			in:   "``````",
			want: "",
		},
		{
			name: "blank lines only",
			in:   "\n \n",
			want: "",
		},
		{
			name: "whitespace without newline",
			in:   "   ",
			want: "   ",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Postprocess(tt.in); got != tt.want {
				t.Errorf("Postprocess(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPostprocess_IdempotentOnCleanContent(t *testing.T) {
	// Content free of wrapping fences and leading blank lines must pass
	// through untouched, so a second pass changes nothing.
	inputs := []string{
		"# Title\n\nbody\n",
		"plain text",
		"# T\n```go\ncode\n```\nafter\n",
	}
	for _, in := range inputs {
		once := Postprocess(in)
		if once != in {
			t.Errorf("Postprocess(%q) = %q, want unchanged", in, once)
		}
		if twice := Postprocess(once); twice != once {
			t.Errorf("Postprocess not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}
