// Package urls holds the external links printed by the odintv commands, so
// they can be updated in one place.
//
//	import "github.com/muurk/odintv/internal/urls"
//
//	tips := []string{"Create a key at " + urls.GeminiAPIKeys}
package urls
