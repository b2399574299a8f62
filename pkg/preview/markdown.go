package preview

import (
	"bytes"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Chat messages are written in markdown and inserted into the page as raw
// HTML, so the rendered output always goes through the sanitizer.
var (
	markdownOnce sync.Once
	markdown     goldmark.Markdown

	chatPolicyOnce sync.Once
	chatPolicy     *bluemonday.Policy
)

func markdownConverter() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdown = goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		)
	})
	return markdown
}

func chatSanitizer() *bluemonday.Policy {
	chatPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		chatPolicy = policy
	})
	return chatPolicy
}

// renderMessage converts a markdown chat message to sanitized HTML. It
// returns "" for blank input.
func renderMessage(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := markdownConverter().Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(chatSanitizer().Sanitize(buf.String())), nil
}
