package adapters

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"openbare/client/domain"
	"openbare/client/interfaces"
	"openbare/client/service"
	"openbare/helpers"
)

// Headers of the relay exchange between the client and a pool server.
const (
	HeaderBareURL     = "X-Bare-URL"
	HeaderBareHeaders = "X-Bare-Headers"
	HeaderBareStatus  = "X-Bare-Status"

	relayPath = "/v1/"
)

// maxErrorBody caps how much of a server error body ends up in a BareError message.
const maxErrorBody = 4 << 10

// HTTPTransport creates an interfaces.Transport that relays requests through a pool server: the request
// goes to serverURL/v1/ with its method and body, the target in X-Bare-URL and the original headers as
// JSON in X-Bare-Headers. The server answers with the remote status in X-Bare-Status and the remote
// headers in X-Bare-Headers. Panics on nil client.
//
// Called from cmd/main.
func HTTPTransport(client *http.Client) interfaces.Transport {
	return &httpTransport{
		client: helpers.NilPanic(client, "adapters.transport.go: http client is required"),
	}
}

type httpTransport struct {
	client *http.Client
}

// errorBody is the JSON error shape pool servers use for their own failures.
type errorBody struct {
	Message string `json:"message"`
}

// Do relays req via serverURL.
//
// Returns: the relayed response; *service.BareError with the server status when the server itself
// rejected or failed the request (no X-Bare-Status); transport errors as is.
func (t *httpTransport) Do(ctx context.Context, serverURL string, req domain.Request) (domain.Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(serverURL, "/")+relayPath, body)
	if err != nil {
		return domain.Response{}, service.NewBareError(err.Error(), 0)
	}
	httpReq.Header.Set(HeaderBareURL, req.URL)
	if len(req.Header) > 0 {
		encoded, err := json.Marshal(req.Header)
		if err != nil {
			return domain.Response{}, service.NewBareError(err.Error(), 0)
		}
		httpReq.Header.Set(HeaderBareHeaders, string(encoded))
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return domain.Response{}, err
	}
	defer resp.Body.Close()

	relayed := resp.Header.Get(HeaderBareStatus)
	if relayed == "" {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return domain.Response{}, serverError(resp)
		}
		return readResponse(resp, resp.StatusCode, resp.Header.Clone())
	}

	status, err := strconv.Atoi(relayed)
	if err != nil {
		return domain.Response{}, service.NewBareError(fmt.Sprintf("invalid %s %q", HeaderBareStatus, relayed), http.StatusBadGateway)
	}
	header := http.Header{}
	if raw := resp.Header.Get(HeaderBareHeaders); raw != "" {
		if err := json.Unmarshal([]byte(raw), &header); err != nil {
			return domain.Response{}, service.NewBareError("invalid "+HeaderBareHeaders+": "+err.Error(), http.StatusBadGateway)
		}
	}
	return readResponse(resp, status, header)
}

func readResponse(resp *http.Response, status int, header http.Header) (domain.Response, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Response{}, err
	}
	return domain.Response{Status: status, Header: header, Body: body}, nil
}

func serverError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := http.StatusText(resp.StatusCode)
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil && eb.Message != "" {
		msg = eb.Message
	} else if s := strings.TrimSpace(string(raw)); s != "" {
		msg = s
	}
	return service.NewBareError(msg, resp.StatusCode)
}
