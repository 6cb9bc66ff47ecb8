package model

// App is a lightweight link record inside a folder: a named internal
// tool with an optional launch URL.
type App struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// NewAppParams holds parameters for creating a new App.
type NewAppParams struct {
	Name        string
	Description string
	URL         string
}

// NewApp creates an App with a generated id.
func NewApp(params NewAppParams) App {
	return App{
		ID:          NewID(),
		Name:        params.Name,
		Description: params.Description,
		URL:         params.URL,
	}
}
