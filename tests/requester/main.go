package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

// Нагрузочный клиент: создает заказы, читает и иногда отменяет их.
// Идентификаторы товаров передаются аргументами.

const baseURL = "http://localhost:8080/api/v1/orders"

var users = []string{
	"11111111-1111-4111-8111-111111111111",
	"22222222-2222-4222-8222-222222222222",
	"33333333-3333-4333-8333-333333333333",
}

type placed struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func main() {
	products := os.Args[1:]
	if len(products) == 0 {
		fmt.Println("usage: requester <product-id>...")
		os.Exit(1)
	}

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(products) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest(products []string) {
	user := users[rand.Intn(len(users))]

	body, _ := json.Marshal(map[string]any{
		"orderItems": []map[string]any{
			{"product": products[rand.Intn(len(products))], "quantity": 1 + rand.Intn(3)},
		},
	})
	resp, err := send(http.MethodPost, baseURL, user, bytes.NewReader(body))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	defer resp.Body.Close()
	fmt.Println("POST", baseURL, "->", resp.Status)
	if resp.StatusCode != http.StatusCreated {
		return
	}

	var p placed
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return
	}

	url := baseURL + "/" + p.Data.ID
	if r, err := send(http.MethodGet, url, user, nil); err == nil {
		fmt.Println("GET", url, "->", r.Status)
		r.Body.Close()
	}

	if rand.Intn(4) == 0 {
		if r, err := send(http.MethodPatch, url+"/cancel", user, nil); err == nil {
			fmt.Println("PATCH", url+"/cancel", "->", r.Status)
			r.Body.Close()
		}
	}
}

func send(method, url, user string, body *bytes.Reader) (*http.Response, error) {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, url, body)
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-User-ID", user)
	req.Header.Set("Content-Type", "application/json")
	return http.DefaultClient.Do(req)
}
