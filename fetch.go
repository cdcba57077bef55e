package estimate

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// contains http utils to retrieve estimate documents from remote services

// LoadError reports a load failure: neither the primary nor the fallback
// location produced a usable document. It is the only error that crosses
// the boundary of this package; every field-level anomaly inside a document
// degrades to a default instead.
type LoadError struct {
	Primary  error
	Fallback error
}

func (e *LoadError) Error() string {
	if e.Fallback == nil {
		return fmt.Sprintf("cannot load estimate: %v", e.Primary)
	}
	return fmt.Sprintf("cannot load estimate: %v (fallback: %v)", e.Primary, e.Fallback)
}

// DecodeEstimate decodes a JSON estimate document and normalizes it into
// the canonical model. The only way this fails is an undecodable document;
// any decodable JSON object yields a model, possibly empty.
func DecodeEstimate(r io.Reader) ([]Section, error) {
	var envelope map[string]any
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("cannot decode estimate document: %w", err)
	}
	return BuildModel(envelope), nil
}

// Fetch retrieves and normalizes an estimate document. The primary location
// is attempted first; on any failure (transport error, non-success status,
// undecodable body) the fallback location is attempted. When both fail the
// returned error is a *LoadError carrying both causes. There is no retry
// beyond the two locations.
func Fetch(client *http.Client, primary, fallback string) ([]Section, error) {
	raw, err := FetchRaw(client, primary, fallback)
	if err != nil {
		return nil, err
	}
	return DecodeEstimate(bytes.NewReader(raw))
}

// FetchRaw retrieves an estimate document and returns it exactly as the
// producer served it, without normalizing it. A copy saved to disk therefore
// loads into the same model as the live document. The fallback rules are
// those of Fetch; a body that is not a JSON object counts as a failure so
// the fallback location still gets its turn.
func FetchRaw(client *http.Client, primary, fallback string) ([]byte, error) {
	raw, errPrimary := fetchOne(client, primary)
	if errPrimary == nil {
		return raw, nil
	}
	if fallback == "" {
		return nil, &LoadError{Primary: errPrimary}
	}
	log.Printf("primary estimate location failed (%v), trying fallback", errPrimary)
	raw, errFallback := fetchOne(client, fallback)
	if errFallback == nil {
		return raw, nil
	}
	return nil, &LoadError{Primary: errPrimary, Fallback: errFallback}
}

func fetchOne(client *http.Client, addr string) ([]byte, error) {
	resp, err := client.Get(addr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("cannot decode estimate document: %w", err)
	}
	return body, nil
}

// diskCache implements a simple disk cache for HTTP responses, so a
// previously fetched estimate stays readable while offline.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// the key includes the day, so the local copy expires daily.
	key := fmt.Sprintf("%s %s %s", time.Now().Format("2006-01-02"), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	err = c.put(key, resp)
	if err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// Cached returns a client whose successful responses are cached on disk
// with a daily expiry.
func Cached() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}
