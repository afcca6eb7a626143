package cache

// LayoutTag labels every entry that feeds the shared site chrome (header,
// footer, navigation). Invalidating it busts the whole layout.
const LayoutTag = "layout"

// PathTag returns the invalidation label for one rendered page path, so a
// webhook can bust exactly the entries behind `/blog/my-post`.
func PathTag(path string) string {
	return "path:" + path
}
