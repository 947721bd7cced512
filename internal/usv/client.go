package usv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client fetches reference data from the university timetable API. The
// endpoints serve plain JSON arrays and require no authentication.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type Faculty struct {
	ID        string `json:"id"`
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
}

type Professor struct {
	ID             string `json:"id"`
	LastName       string `json:"lastName"`
	FirstName      string `json:"firstName"`
	EmailAddress   string `json:"emailAddress"`
	FacultyName    string `json:"facultyName"`
	DepartmentName string `json:"departmentName"`
}

type Room struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	BuildingName string `json:"buildingName"`
	Capacity     string `json:"capacitate"`
}

func (c *Client) Faculties(ctx context.Context) ([]Faculty, error) {
	var out []Faculty
	if err := c.getJSON(ctx, "/facultati.php?json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Professors(ctx context.Context) ([]Professor, error) {
	var out []Professor
	if err := c.getJSON(ctx, "/cadre.php?json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Rooms(ctx context.Context) ([]Room, error) {
	var out []Room
	if err := c.getJSON(ctx, "/sali.php?json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("timetable API returned status %d for %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
