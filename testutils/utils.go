package testutils

import (
	"bytes"
	"io"
	"net/http"
	"reflect"
	"testing"
)

// CompareRequest reports whether an outgoing request matches the expected one. Bodies are compared byte by byte and
// stay readable afterwards.
func CompareRequest(t *testing.T, expected, actual *http.Request) bool {
	t.Helper()

	if expected.Method != actual.Method {
		t.Logf("expected request method: %s, got: %s", expected.Method, actual.Method)

		return false
	}

	if expected.URL.String() != actual.URL.String() {
		t.Logf("expected URL: %s, got: %s", expected.URL.String(), actual.URL.String())

		return false
	}

	if !reflect.DeepEqual(expected.Header, actual.Header) {
		t.Logf("expected headers: %s, got: %s", expected.Header, actual.Header)

		return false
	}

	expectedBody, err := peekBody(expected)
	if err != nil {
		t.Logf("failed to read expected body: %s", err)

		return false
	}

	actualBody, err := peekBody(actual)
	if err != nil {
		t.Logf("failed to read actual body: %s", err)

		return false
	}

	if !bytes.Equal(expectedBody, actualBody) {
		t.Logf("expected body: %s, got: %s", expectedBody, actualBody)

		return false
	}

	return true
}

func peekBody(r *http.Request) ([]byte, error) {
	if r.GetBody != nil {
		body, err := r.GetBody()
		if err != nil {
			return nil, err
		}
		defer body.Close()

		return io.ReadAll(body)
	}

	if r.Body == nil {
		return nil, nil
	}

	b, err := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(b))

	return b, err
}
