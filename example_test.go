package waybill_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/aretw0/waybill"
	"github.com/aretw0/waybill/pkg/core"
)

// Example_basic demonstrates building a console against a vendor API
// and navigating to an order screen.
func Example_basic() {
	// A stand-in for the vendor API. Every response is an envelope with
	// success, message, and the payload keyed by resource name.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/vendor/orders/ord-1":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"order":   core.Order{ID: "ord-1", CustomerID: "cus-1", Status: "delivered"},
			})
		case "/vendor/customers/cus-1":
			json.NewEncoder(w).Encode(map[string]any{
				"success":  true,
				"customer": core.Customer{ID: "cus-1", Name: "Ada"},
			})
		}
	}))
	defer server.Close()

	console, err := waybill.New(server.URL,
		waybill.WithStaticSession("token", "operator", "vendor-1"),
	)
	if err != nil {
		log.Fatal(err)
	}

	// Navigate to the order screen. The loader fetches the order, then
	// its customer, and commits the composed result.
	navigation, err := console.Navigate(context.Background(), "/orders/ord-1")
	if err != nil {
		log.Fatal(err)
	}

	data, _ := navigation.Data(waybill.RouteOrder)
	detail := data.(*core.OrderDetail)
	fmt.Printf("%s ordered by %s\n", detail.Order.ID, detail.Customer.Name)
	// Output:
	// ord-1 ordered by Ada
}
