package api

import (
	"fmt"
	"net/http"
	"time"
)

var HttpClient = &WkHttpClient{
	Client: http.Client{Timeout: 30 * time.Second},
}

type WkHttpClient struct {
	http.Client
}

func (c *WkHttpClient) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "wkreport (+https://github.com/lderezinski/wkreport)")
	resp, err := c.Client.Do(req)
	if resp == nil && err == nil {
		panic(fmt.Errorf("no response and no error %v", req))
	}

	return resp, err
}
