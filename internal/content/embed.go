package content

import (
	"net/url"
	"strings"
)

const (
	youTubeEmbedPrefix = "https://www.youtube.com/embed/"
	vimeoPlayerPrefix  = "https://player.vimeo.com/video/"
)

// EmbedURL rewrites YouTube and Vimeo share links into player URLs.
// Any other input, including malformed URLs, is returned unchanged.
func EmbedURL(raw string) string {
	u, err := parseLink(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	host := strings.ToLower(u.Hostname())

	switch {
	case hostIs(host, "youtube.com") || hostIs(host, "youtu.be"):
		id := u.Query().Get("v")
		if id == "" {
			id = lastSegment(u.Path)
		}
		if id == "" {
			return raw
		}
		return youTubeEmbedPrefix + url.PathEscape(id)
	case hostIs(host, "vimeo.com"):
		id := lastSegment(u.Path)
		if id == "" {
			return raw
		}
		return vimeoPlayerPrefix + url.PathEscape(id)
	}
	return raw
}

// parseLink accepts share links pasted without a scheme, like "youtu.be/abc".
func parseLink(raw string) (*url.URL, error) {
	s := strings.TrimSpace(raw)
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	return url.Parse(s)
}

func hostIs(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

func lastSegment(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
