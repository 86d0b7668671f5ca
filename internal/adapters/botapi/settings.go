package botapi

// settings.go — frontera con las pantallas de configuración: documento de
// config y CRUD de prompts. Implementa ports.SettingsProvider.

import (
	"context"
	"fmt"
)

const (
	configPath          = "/api/config"
	promptsListPath     = "/api/prompts/list"
	promptsContentPath  = "/api/prompts/content"
	promptsSavePath     = "/api/prompts/save"
	promptsActivatePath = "/api/prompts/activate"
)

// FetchConfig devuelve el documento de configuración completo sin interpretar.
// El monitor no valida el contenido: esa es responsabilidad del backend.
func (c *Client) FetchConfig(ctx context.Context) (map[string]any, error) {
	var doc map[string]any
	if err := c.get(ctx, configPath, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// UpdateConfig envía el documento de configuración completo.
func (c *Client) UpdateConfig(ctx context.Context, doc map[string]any) error {
	if len(doc) == 0 {
		return fmt.Errorf("botapi.UpdateConfig: empty config document")
	}
	return c.post(ctx, configPath, doc, nil)
}

// ListPrompts devuelve los nombres de los archivos de prompt disponibles.
func (c *Client) ListPrompts(ctx context.Context) ([]string, error) {
	var resp promptListResponse
	if err := c.get(ctx, promptsListPath, &resp); err != nil {
		return nil, err
	}
	return resp.Files, nil
}

// PromptContent devuelve el contenido de un archivo de prompt.
func (c *Client) PromptContent(ctx context.Context, file string) (string, error) {
	var resp promptContentResponse
	path := promptsContentPath + "?file=" + queryEscape(file)
	if err := c.get(ctx, path, &resp); err != nil {
		return "", err
	}
	return resp.Content, nil
}

// SavePrompt guarda el contenido de un archivo de prompt.
func (c *Client) SavePrompt(ctx context.Context, filename, content string) error {
	if filename == "" {
		return fmt.Errorf("botapi.SavePrompt: filename required")
	}
	return c.post(ctx, promptsSavePath, promptSaveRequest{Filename: filename, Content: content}, nil)
}

// ActivatePrompt marca un archivo de prompt como el activo del bot.
func (c *Client) ActivatePrompt(ctx context.Context, filename string) error {
	if filename == "" {
		return fmt.Errorf("botapi.ActivatePrompt: filename required")
	}
	return c.post(ctx, promptsActivatePath, promptActivateRequest{Filename: filename}, nil)
}
