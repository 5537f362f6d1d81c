package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// Simulates back-office traffic against a running API: books trips,
// starts and ends them, and pays the generated bills. Useful for
// filling a fresh install with realistic data.

var (
	apiURL    string
	authToken string
)

var vehicleTypes = []string{"sedan", "suv", "innova", "tempo", "bus", "mini_bus"}

var pickupLocations = []string{
	"Chennai Airport",
	"Coimbatore Junction",
	"Madurai Bus Stand",
	"Trichy Central",
	"Salem New Bus Stand",
	"Pondicherry Beach Road",
}

func request(method, path string, payload interface{}) (map[string]interface{}, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, apiURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, data)
	}

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func login() error {
	out, err := request(http.MethodPost, "/auth/login", map[string]string{
		"username": envOr("SIM_USERNAME", "owner"),
		"password": envOr("SIM_PASSWORD", "owner123"),
	})
	if err != nil {
		return err
	}
	token, _ := out["token"].(string)
	if token == "" {
		return fmt.Errorf("login response did not contain a token")
	}
	authToken = token
	return nil
}

func createCar(i int) (string, error) {
	out, err := request(http.MethodPost, "/cars", map[string]interface{}{
		"vehicleNumber":       fmt.Sprintf("TN-09-%c-%04d", 'A'+rand.Intn(26), rand.Intn(10000)),
		"vehicleType":         vehicleTypes[i%len(vehicleTypes)],
		"currentKm":           float64(10000 + rand.Intn(90000)),
		"nextServiceKm":       float64(110000),
		"fcExpiryDate":        "2027-03-31",
		"insuranceExpiryDate": "2026-12-31",
		"pucExpiryDate":       "2026-06-30",
	})
	if err != nil {
		return "", err
	}
	id, _ := out["id"].(string)
	return id, nil
}

func dateOffset(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func runTrip(carID, vehicleType string) error {
	trip, err := request(http.MethodPost, "/trips", map[string]interface{}{
		"pickupDate":     dateOffset(0),
		"pickupTime":     "06:00",
		"pickupLocation": pickupLocations[rand.Intn(len(pickupLocations))],
		"numberOfDays":   1 + rand.Intn(5),
		"placesToVisit":  "Ooty, Kodaikanal",
		"customerName":   fmt.Sprintf("Customer %d", rand.Intn(1000)),
		"carId":          carID,
		"vehicleType":    vehicleType,
	})
	if err != nil {
		return err
	}
	tripID, _ := trip["id"].(string)

	startKm := float64(10000 + rand.Intn(50000))
	if _, err := request(http.MethodPut, "/trips/"+tripID+"/start", map[string]interface{}{
		"startKm":   startKm,
		"startDate": dateOffset(0),
		"startTime": "06:30",
	}); err != nil {
		return err
	}

	tripDays := 1 + rand.Intn(4)
	if _, err := request(http.MethodPut, "/trips/"+tripID+"/end", map[string]interface{}{
		"endKm":      startKm + float64(100+rand.Intn(900)),
		"endDate":    dateOffset(tripDays),
		"endTime":    "20:00",
		"tollAmount": float64(rand.Intn(300)),
		"permit":     float64(rand.Intn(100)),
	}); err != nil {
		return err
	}

	bills, err := listBills(tripID)
	if err != nil || len(bills) == 0 {
		log.WithError(err).Warn("Could not fetch bill, skipping payment")
		return nil
	}

	billID, _ := bills[0]["id"].(string)
	total, _ := bills[0]["totalBill"].(float64)
	if billID != "" && total > 0 {
		// pay roughly half now, leaving the bill partial
		if err := payBill(billID, float64(int(total/2))); err != nil {
			log.WithError(err).Warn("Payment failed")
		}
	}

	log.WithFields(log.Fields{"trip_id": tripID, "bill_id": billID}).Info("Trip completed and billed")
	return nil
}

func payBill(billID string, amount float64) error {
	_, err := request(http.MethodPost, "/payments", map[string]interface{}{
		"billId": billID,
		"amount": amount,
		"date":   dateOffset(0),
	})
	return err
}

// listBills fetches bills for a trip; list endpoints return arrays so
// they bypass the map-decoding helper.
func listBills(tripID string) ([]map[string]interface{}, error) {
	req, err := http.NewRequest(http.MethodGet, apiURL+"/bills?tripId="+tripID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+authToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var bills []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&bills); err != nil {
		return nil, err
	}
	return bills, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	apiURL = envOr("API_BASE_URL", "http://localhost:8080/api")

	tripCount := 10
	if v := os.Getenv("SIM_TRIPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			tripCount = n
		}
	}

	if err := login(); err != nil {
		log.WithError(err).Fatal("Login failed")
	}
	log.WithFields(log.Fields{"api_url": apiURL, "trips": tripCount}).Info("Starting trip simulation")

	for i := 0; i < tripCount; i++ {
		vehicleType := vehicleTypes[i%len(vehicleTypes)]
		carID, err := createCar(i)
		if err != nil {
			log.WithError(err).Error("Failed to create car")
			continue
		}

		if err := runTrip(carID, vehicleType); err != nil {
			log.WithError(err).Error("Trip flow failed")
			continue
		}
	}

	log.Info("Simulation finished")
}
