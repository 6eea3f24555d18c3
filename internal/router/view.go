package router

// View is the result of one GET action: a view name and its named bindings,
// materialized before anything is written to the client. Handlers abort on
// the first repository error rather than build a partial View.
type View struct {
	Name     string         `json:"view"`
	Bindings map[string]any `json:"data,omitempty"`
}
