package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"github.com/concourse/jenkinsflight/jenkins"
	"github.com/tedsuo/rata"
)

type Connection interface {
	URL() string
	HTTPClient() *http.Client

	Send(request Request, response *Response) error
}

type Request struct {
	RequestName string
	Params      rata.Params
	Query       url.Values
	Header      http.Header
	Body        []byte
}

type Response struct {
	// Result receives the body. *string and *[]byte get it verbatim,
	// anything else is decoded as JSON.
	Result  any
	Headers *http.Header
}

type BasicAuth struct {
	Username string
	Token    string
}

type connection struct {
	url        string
	httpClient *http.Client
	auth       BasicAuth
	tracing    bool
	logger     lager.Logger

	requestGenerator *rata.RequestGenerator
	crumbs           *crumbs
}

func NewConnection(logger lager.Logger, apiURL string, httpClient *http.Client, auth BasicAuth, tracing bool) Connection {
	apiURL = strings.TrimRight(apiURL, "/")

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	conn := &connection{
		url:        apiURL,
		httpClient: httpClient,
		auth:       auth,
		tracing:    tracing,
		logger:     logger.Session("connection"),

		requestGenerator: rata.NewRequestGenerator(apiURL, jenkins.Routes),
	}

	conn.crumbs = newCrumbs(conn.fetchCrumb)

	return conn
}

func (connection *connection) URL() string {
	return connection.url
}

func (connection *connection) HTTPClient() *http.Client {
	return connection.httpClient
}

func (connection *connection) Send(passedRequest Request, passedResponse *Response) error {
	response, err := connection.send(passedRequest, true)
	if err != nil {
		return err
	}

	if response.StatusCode == http.StatusForbidden && connection.crumbRejected(response) {
		connection.logger.Info("crumb-rejected", lager.Data{"request": passedRequest.RequestName})
		connection.crumbs.invalidate()

		response, err = connection.send(passedRequest, true)
		if err != nil {
			return err
		}
	}

	return connection.populateResponse(response, passedResponse)
}

type rawResponse struct {
	url        string
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

func (connection *connection) send(passedRequest Request, withCrumb bool) (*rawResponse, error) {
	req, err := connection.createHTTPRequest(passedRequest)
	if err != nil {
		return nil, err
	}

	if withCrumb && req.Method != http.MethodGet {
		err = connection.crumbs.apply(req)
		if err != nil {
			return nil, fmt.Errorf("fetch crumb: %w", err)
		}
	}

	if connection.tracing {
		connection.logger.Debug("request", lager.Data{
			"name":   passedRequest.RequestName,
			"method": req.Method,
			"url":    req.URL.String(),
		})
	}

	resp, err := connection.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if connection.tracing {
		connection.logger.Debug("response", lager.Data{
			"name":   passedRequest.RequestName,
			"status": resp.Status,
			"bytes":  len(body),
		})
	}

	return &rawResponse{
		url:        req.URL.String(),
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

func (connection *connection) createHTTPRequest(passedRequest Request) (*http.Request, error) {
	var body io.Reader
	if passedRequest.Body != nil {
		body = bytes.NewReader(passedRequest.Body)
	}

	req, err := connection.requestGenerator.CreateRequest(
		passedRequest.RequestName,
		passedRequest.Params,
		body,
	)
	if err != nil {
		return nil, err
	}

	if len(passedRequest.Query) > 0 {
		req.URL.RawQuery = passedRequest.Query.Encode()
	}

	for k, vs := range passedRequest.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	if connection.auth.Username != "" {
		req.SetBasicAuth(connection.auth.Username, connection.auth.Token)
	}

	return req, nil
}

func (connection *connection) crumbRejected(response *rawResponse) bool {
	return bytes.Contains(bytes.ToLower(response.Body), []byte("crumb"))
}

func (connection *connection) fetchCrumb() (jenkins.Crumb, error) {
	response, err := connection.send(Request{RequestName: jenkins.GetCrumb}, false)
	if err != nil {
		return jenkins.Crumb{}, err
	}

	if response.StatusCode == http.StatusNotFound {
		return jenkins.Crumb{}, nil
	}

	var crumb jenkins.Crumb
	err = connection.populateResponse(response, &Response{Result: &crumb})
	if err != nil {
		return jenkins.Crumb{}, err
	}

	return crumb, nil
}

func (connection *connection) populateResponse(response *rawResponse, passedResponse *Response) error {
	switch {
	case response.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case response.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case response.StatusCode == http.StatusNotFound:
		return ResourceNotFoundError{URL: response.url}
	case response.StatusCode < 200 || response.StatusCode > 299:
		return UnexpectedResponseError{
			StatusCode: response.StatusCode,
			Status:     response.Status,
			Body:       string(response.Body),
		}
	}

	if passedResponse == nil {
		return nil
	}

	if passedResponse.Headers != nil {
		if *passedResponse.Headers == nil {
			*passedResponse.Headers = http.Header{}
		}

		for k, v := range response.Header {
			(*passedResponse.Headers)[k] = v
		}
	}

	switch result := passedResponse.Result.(type) {
	case nil:
		return nil
	case *string:
		*result = string(response.Body)
		return nil
	case *[]byte:
		*result = response.Body
		return nil
	}

	if len(response.Body) == 0 {
		return nil
	}

	return json.Unmarshal(response.Body, passedResponse.Result)
}
