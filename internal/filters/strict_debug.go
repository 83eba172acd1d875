//go:build monoff_debug

package filters

const strictCatalog = true
