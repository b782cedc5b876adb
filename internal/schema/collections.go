package schema

// Names of the built-in collections.
const (
	CollectionProjects     = "projects"
	CollectionPublications = "publications"
	CollectionArt          = "art"
)

// Projects describes software and research projects.
func Projects() Schema {
	return Schema{Name: CollectionProjects, Fields: []Field{
		Required("title", String),
		Required("description", String),
		Optional("date", Date),
		WithDefault("tags", StringList, []string{}),
		Optional("repo", URL),
		Optional("link", URL),
		Optional("thumb", String),
		Optional("hero", String),
		Optional("excerpt", String),
		WithDefault("page", Bool, false),
		WithDefault("external", Bool, false),
		Optional("gallery", StringList),
		Optional("video", URL),
		WithDefault("featured", Bool, false),
	}}
}

// Publications describes papers and talks.
func Publications() Schema {
	return Schema{Name: CollectionPublications, Fields: []Field{
		Required("title", String),
		Optional("venue", String),
		Optional("date", Date),
		WithDefault("authors", StringList, []string{}),
		Optional("link", URL),
	}}
}

// Art describes artwork entries.
func Art() Schema {
	return Schema{Name: CollectionArt, Fields: []Field{
		Required("title", String),
		Optional("medium", String),
		Optional("date", Date),
		WithDefault("tags", StringList, []string{}),
		Optional("image", String),
		Optional("link", URL),
	}}
}
