package tracking

import (
	"net/url"

	"github.com/melih/projectdock/internal/config"
	"github.com/melih/projectdock/internal/core/ports"
)

// TaggerForURI picks the tagging client matching a tracking URI: HTTP
// servers get the REST client, local file stores get direct filesystem
// writes, and everything else (managed or database-backed) gets none.
func TaggerForURI(trackingURI string) ports.RunTagger {
	if trackingURI == config.DatabricksURI {
		return nil
	}
	parsed, err := url.Parse(trackingURI)
	if err != nil {
		return nil
	}
	switch parsed.Scheme {
	case "http", "https":
		return NewRestTagger(trackingURI)
	case "", "file":
		if parsed.Host != "" || parsed.Path == "" {
			return nil
		}
		return NewFileStoreTagger(parsed.Path)
	default:
		return nil
	}
}
