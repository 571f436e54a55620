package middleware

import (
	"context"
	"net/http"
	"strings"
)

type countryContextKey struct{}

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

var countryHeaders = []string{"X-Country-Code", "CF-IPCountry", "X-Appengine-Country"}

// Country stores the caller's ISO country code in the request context.
// Proxy headers win over the GeoIP lookup.
func Country(lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if country := ResolveCountry(r, lookup); country != "" {
				r = r.WithContext(context.WithValue(r.Context(), countryContextKey{}, country))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func CountryFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(countryContextKey{}).(string); ok {
		return v
	}
	return ""
}

func ResolveCountry(r *http.Request, lookup CountryLookup) string {
	for _, key := range countryHeaders {
		if val := strings.TrimSpace(r.Header.Get(key)); len(val) == 2 {
			return strings.ToUpper(val)
		}
	}
	if lookup == nil {
		return ""
	}
	if country, err := lookup(ClientIP(r)); err == nil && country != "" {
		return strings.ToUpper(country)
	}
	return ""
}
