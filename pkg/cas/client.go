package cas

import (
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// loginURL points at the INSA CAS portal. Variable so tests can swap in
// a local server.
var loginURL = "https://login.insa-lyon.fr/cas/login"

// Client holds an authenticated session against the CAS-protected
// intranet. The cookie jar carries the session cookie the login
// handshake establishes.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new CAS client with a fresh cookie jar.
func NewClient() *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
			Jar:     jar,
		},
	}
}

// Login runs the CAS handshake: a first GET fetches the login form to
// scrape the login ticket and execution token, then a POST submits them
// with the user's credentials. The session cookie lands in the jar.
func (c *Client) Login(username, password string) error {
	resp, err := c.Get(loginURL)
	if err != nil {
		return fmt.Errorf("fetching CAS login form: %w", err)
	}
	defer resp.Body.Close()

	ticket, execution, err := loginTokens(resp.Body)
	if err != nil {
		return fmt.Errorf("reading CAS login form: %w", err)
	}

	form := url.Values{
		"username":  {username},
		"password":  {password},
		"lt":        {ticket},
		"execution": {execution},
		"_eventId":  {"submit"},
	}

	req, err := http.NewRequest("POST", loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	post, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("submitting CAS credentials: %w", err)
	}
	defer post.Body.Close()

	if post.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d from CAS login", post.StatusCode)
	}
	return nil
}

const userAgent = "Mozilla/5.0"

// Get fetches the given URL within the authenticated session.
func (c *Client) Get(pageURL string) (*http.Response, error) {
	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, pageURL)
	}

	return resp, nil
}

// loginTokens scrapes the one-time login ticket ("lt") and execution
// token out of the CAS login form.
func loginTokens(r io.Reader) (ticket, execution string, err error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", "", err
	}

	ticket, ok := doc.Find(`input[name="lt"]`).Attr("value")
	if !ok {
		return "", "", fmt.Errorf("login form has no \"lt\" input")
	}

	execution, ok = doc.Find(`input[name="execution"]`).Attr("value")
	if !ok {
		return "", "", fmt.Errorf("login form has no \"execution\" input")
	}

	return ticket, execution, nil
}
