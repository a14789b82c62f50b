package engine

// Domains is the fixed list of installation domains --dominfo prints,
// matching the macOS installer's own fixed domain identifiers (this tool
// has no notion of per-domain installation, but preserves the interface
// surface it mimics).
var Domains = []string{"system", "local", "network", "user"}

// QueryField extracts a single metadata field from a PackageInfo for
// --query. Only native metadata is addressable this way; a foreign
// package simply has no value for fields like RestartAction.
func QueryField(info *PackageInfo, field string) (string, bool) {
	if info.NativeMeta == nil {
		return "", false
	}
	m := info.NativeMeta
	switch field {
	case "name":
		return m.Name, true
	case "version":
		return m.Version, true
	case "description":
		return m.Description, true
	case "author":
		return m.Author, true
	case "license":
		return m.License, true
	case "RestartAction":
		return m.RestartAction, true
	default:
		return "", false
	}
}

// InfoDict assembles the flat key/value metadata summary printed by
// --pkginfo.
func InfoDict(info *PackageInfo) map[string]string {
	dict := map[string]string{"kind": info.Kind.String()}
	if info.NativeMeta != nil {
		m := info.NativeMeta
		dict["name"] = m.Name
		dict["version"] = m.Version
		dict["description"] = m.Description
		dict["author"] = m.Author
		dict["license"] = m.License
		dict["homepage"] = m.Homepage
		dict["target"] = m.Target
		dict["install_location"] = m.InstallLoc
		dict["RestartAction"] = m.RestartAction
	}
	if info.ForeignMeta != nil {
		m := info.ForeignMeta
		dict["id"] = m.ID
		dict["version"] = m.Version
		dict["title"] = m.Title
		dict["authors"] = m.Authors
		dict["description"] = m.Description
	}
	return dict
}
