package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// --- Response types (дублируются из api/dto.go, CLI не импортирует internal/api) ---

// FlashcardResponse — карточка из API.
type FlashcardResponse struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Deck       string   `json:"deck,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

// --- Request types ---

// CreateFlashcardRequest — создание карточки.
type CreateFlashcardRequest struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Deck       string   `json:"deck,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
}

// UpdateFlashcardRequest — обновление карточки.
type UpdateFlashcardRequest struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Deck       string   `json:"deck,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
}

// ListCardsOpts — параметры фильтрации карточек.
type ListCardsOpts struct {
	Deck  string
	Tag   string
	Limit int
}

// --- API response wrappers ---

type dataResponse struct {
	Data json.RawMessage `json:"data"`
}

type listResponse struct {
	Data  json.RawMessage `json:"data"`
	Total int             `json:"total"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// --- Client ---

// Client — HTTP-клиент для Memora API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для API.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- Flashcards ---

// ListCards возвращает список карточек с фильтрацией.
func (c *Client) ListCards(opts ListCardsOpts) ([]FlashcardResponse, error) {
	params := url.Values{}
	if opts.Deck != "" {
		params.Set("deck", opts.Deck)
	}
	if opts.Tag != "" {
		params.Set("tag", opts.Tag)
	}
	if opts.Limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", opts.Limit))
	}

	var cards []FlashcardResponse
	err := c.list("/api/flashcards", params, &cards)
	return cards, err
}

// CreateCard создаёт новую карточку.
func (c *Client) CreateCard(req CreateFlashcardRequest) (*FlashcardResponse, error) {
	var card FlashcardResponse
	err := c.post("/api/flashcards", req, &card)
	return &card, err
}

// GetCard возвращает карточку по ID.
func (c *Client) GetCard(id string) (*FlashcardResponse, error) {
	var card FlashcardResponse
	err := c.get("/api/flashcards/"+id, &card)
	return &card, err
}

// UpdateCard обновляет карточку.
func (c *Client) UpdateCard(id string, req UpdateFlashcardRequest) (*FlashcardResponse, error) {
	var card FlashcardResponse
	err := c.put("/api/flashcards/"+id, req, &card)
	return &card, err
}

// DeleteCard удаляет карточку.
func (c *Client) DeleteCard(id string) error {
	return c.delete("/api/flashcards/" + id)
}

// --- HTTP helpers ---

func (c *Client) get(path string, result any) error {
	return c.doData(http.MethodGet, path, nil, result)
}

func (c *Client) post(path string, body any, result any) error {
	return c.doData(http.MethodPost, path, body, result)
}

func (c *Client) put(path string, body any, result any) error {
	return c.doData(http.MethodPut, path, body, result)
}

func (c *Client) delete(path string) error {
	resp, err := c.do(http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.checkError(resp)
}

func (c *Client) list(path string, params url.Values, result any) error {
	if len(params) > 0 {
		path = path + "?" + params.Encode()
	}

	resp, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	var lr listResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return json.Unmarshal(lr.Data, result)
}

func (c *Client) doData(method, path string, body any, result any) error {
	resp, err := c.do(method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	// 204 No Content
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var dr dataResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if result != nil {
		return json.Unmarshal(dr.Data, result)
	}
	return nil
}

func (c *Client) do(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

func (c *Client) checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return fmt.Errorf("API error: HTTP %d", resp.StatusCode)
	}

	return fmt.Errorf("%s: %s", er.Error.Code, er.Error.Message)
}
