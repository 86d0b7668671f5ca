package ports

import "context"

// SettingsProvider es la frontera con las pantallas de configuración:
// documento de config y CRUD de archivos de prompt. Flujos simples de
// request/respuesta, sin polling.
type SettingsProvider interface {
	// FetchConfig devuelve el documento de configuración completo, crudo.
	FetchConfig(ctx context.Context) (map[string]any, error)

	// UpdateConfig envía el documento de configuración completo.
	UpdateConfig(ctx context.Context, doc map[string]any) error

	// ListPrompts devuelve los nombres de los archivos de prompt.
	ListPrompts(ctx context.Context) ([]string, error)

	// PromptContent devuelve el contenido de un archivo de prompt.
	PromptContent(ctx context.Context, file string) (string, error)

	// SavePrompt guarda el contenido de un archivo de prompt.
	SavePrompt(ctx context.Context, filename, content string) error

	// ActivatePrompt marca un archivo de prompt como el activo.
	ActivatePrompt(ctx context.Context, filename string) error
}
