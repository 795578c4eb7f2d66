package background

import "strings"

const fenceToken = "```"

// StripCodeFence removes a markdown code-fence wrapper the model sometimes
// puts around its HTML output, including a language tag on the opening
// fence. Stripping is best effort: each side is removed independently when
// recognized, and anything else passes through untouched.
func StripCodeFence(s string) string {
	out := strings.TrimSpace(s)

	if strings.HasPrefix(out, fenceToken) {
		if i := strings.IndexByte(out, '\n'); i >= 0 {
			out = out[i+1:]
		} else {
			out = strings.TrimPrefix(out, fenceToken)
		}
	}

	out = strings.TrimSpace(out)
	if strings.HasSuffix(out, fenceToken) {
		out = strings.TrimSpace(strings.TrimSuffix(out, fenceToken))
	}

	return out
}
