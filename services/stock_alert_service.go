// services/stock_alert_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"omex-backend/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type StockAlertService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewStockAlertService(db *gorm.DB) *StockAlertService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &StockAlertService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *StockAlertService) StartScheduler() {
	c := cron.New()

	// Run every day at 8 AM
	c.AddFunc("0 8 * * *", s.SendDailyAlerts)

	c.Start()
	log.Println("Stock alert scheduler started")
}

func (s *StockAlertService) SendDailyAlerts() {
	log.Println("Starting daily low-stock alert processing...")

	// Get all active accounts that opted in
	var users []models.User
	if err := s.db.Find(&users, "is_active = ? AND low_stock_alerts = ?", true, true).Error; err != nil {
		log.Printf("Failed to fetch accounts: %v", err)
		return
	}

	for _, user := range users {
		s.ProcessUserAlerts(user)
	}

	log.Println("Daily low-stock alert processing completed")
}

func (s *StockAlertService) ProcessUserAlerts(user models.User) {
	products, err := s.lowStockProducts(user.ID)
	if err != nil {
		log.Printf("Account %s: failed to get low-stock products: %v", user.ID, err)
		return
	}
	if len(products) == 0 {
		return
	}
	if user.Phone == "" {
		log.Printf("Account %s: %d products low on stock but no phone configured", user.ID, len(products))
		return
	}

	s.sendAlert(user, products)
}

func (s *StockAlertService) lowStockProducts(userID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("user_id = ? AND quantity <= min_quantity", userID).
		Order("quantity ASC").Find(&products).Error
	return products, err
}

func (s *StockAlertService) sendAlert(user models.User, products []models.Product) {
	// One digest message per account per day
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d product(s) low on stock:\n", user.BusinessName, len(products))
	for _, p := range products {
		fmt.Fprintf(&b, "- %s: %d left (min %d)\n", p.Name, p.Quantity, p.MinQuantity)
	}
	message := b.String()

	// Determine channel (WhatsApp if enabled and E.164 phone, else SMS)
	channel := "sms"
	to := user.Phone
	if user.WhatsAppNotifications && strings.HasPrefix(user.Phone, "+") {
		to = "whatsapp:" + user.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send alert to %s: %v", user.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Alert sent to %s, SID: %s", user.Phone, *resp.Sid)
	} else {
		log.Printf("Alert sent to %s, but no SID returned", user.Phone)
	}

	// Log one row per affected product
	for _, p := range products {
		alertLog := models.StockAlertLog{
			UserID:       user.ID,
			ProductID:    p.ID,
			ProductName:  p.Name,
			Quantity:     p.Quantity,
			MinQuantity:  p.MinQuantity,
			Message:      message,
			Status:       status,
			ErrorMessage: errorMsg,
			Channel:      channel,
			SentAt:       time.Now(),
		}

		if err := s.db.Create(&alertLog).Error; err != nil {
			log.Printf("Failed to log alert for product %s: %v", p.ID, err)
		}
	}
}
