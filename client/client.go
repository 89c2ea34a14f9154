package client

import (
	"context"
	"strconv"
	"time"

	"github.com/IMxMaYur/health-copilot/models"

	"github.com/go-resty/resty/v2"
)

// Client talks to the backend and implements SessionSource plus a
// RecordStore per record kind.
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient}
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) SignUp(ctx context.Context, email, password, fullName string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password, "full_name": fullName}).
		SetError(&apiError{}).
		Post("/auth/register")
	return c.check(resp, err)
}

func (c *Client) SignIn(ctx context.Context, email, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/auth/login")
	if err := c.check(resp, err); err != nil {
		return err
	}

	c.http.SetAuthToken(out.Token)
	return nil
}

func (c *Client) SignOut(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetError(&apiError{}).
		Post("/auth/logout")
	if err := c.check(resp, err); err != nil {
		return err
	}

	c.http.SetAuthToken("")
	return nil
}

// CurrentUser probes the session endpoint; ErrUnauthenticated when the
// session is missing or rejected.
func (c *Client) CurrentUser(ctx context.Context) (*Identity, error) {
	var ident Identity
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&ident).
		SetError(&apiError{}).
		Get("/auth/session")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &ident, nil
}

func (c *Client) Logs() RecordStore[models.DailyLog] {
	return &recordStore[models.DailyLog]{c: c, path: "/api/logs"}
}

func (c *Client) Vitals() RecordStore[models.VitalsEntry] {
	return &recordStore[models.VitalsEntry]{c: c, path: "/api/vitals"}
}

func (c *Client) check(resp *resty.Response, err error) error {
	if err != nil {
		return &NetworkError{Err: err}
	}
	if resp.IsError() {
		if resp.StatusCode() == 401 {
			return ErrUnauthenticated
		}
		msg := resp.Status()
		if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Error != "" {
			msg = apiErr.Error
		}
		return &RemoteError{Status: resp.StatusCode(), Message: msg}
	}
	return nil
}

type recordStore[R any] struct {
	c    *Client
	path string
}

func (s *recordStore[R]) List(ctx context.Context, opts ListOptions) ([]R, error) {
	var out []R
	req := s.c.http.R().SetContext(ctx).SetResult(&out).SetError(&apiError{})
	if opts.Date != "" {
		req.SetQueryParam("date", opts.Date)
	}
	if opts.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(opts.Limit))
	}

	resp, err := req.Get(s.path)
	if err := s.c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *recordStore[R]) Create(ctx context.Context, payload R) (R, error) {
	var out R
	resp, err := s.c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&out).
		SetError(&apiError{}).
		Post(s.path)
	if err := s.c.check(resp, err); err != nil {
		return out, err
	}
	return out, nil
}

func (s *recordStore[R]) Update(ctx context.Context, id uint, payload R) (R, error) {
	var out R
	resp, err := s.c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&out).
		SetError(&apiError{}).
		Put(s.path + "/" + strconv.FormatUint(uint64(id), 10))
	if err := s.c.check(resp, err); err != nil {
		return out, err
	}
	return out, nil
}

func (s *recordStore[R]) Delete(ctx context.Context, id uint) error {
	resp, err := s.c.http.R().
		SetContext(ctx).
		SetError(&apiError{}).
		Delete(s.path + "/" + strconv.FormatUint(uint64(id), 10))
	return s.c.check(resp, err)
}
