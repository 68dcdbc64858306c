package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"lodging-backend/models"
	"lodging-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns the booking-creation flow and read paths. Status-like
// fields are never mutated here after creation; that is the transition
// service's job.
type BookingService struct {
	DB       *gorm.DB
	Machine  *BookingMachine
	Notifier Notifier
}

func NewBookingService(db *gorm.DB, machine *BookingMachine, notifier Notifier) *BookingService {
	return &BookingService{DB: db, Machine: machine, Notifier: notifier}
}

// CreateBookingParams is the input of the creation flow. InitialStatus may be
// pending or confirmed; payment status always starts pending.
type CreateBookingParams struct {
	GuestID       uint
	RoomID        uint
	CheckIn       string
	CheckOut      string
	Adults        int
	Children      int
	TotalPrice    float64
	GuestList     []map[string]interface{}
	InitialStatus models.BookingStatus
}

// helper: keep only safe fields from the accompanying-guest draft
func normalizeGuestList(guestList []map[string]interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(guestList))
	for _, g := range guestList {
		name := ""
		for _, k := range []string{"name", "fullName", "full_name"} {
			if v, ok := g[k]; ok && v != nil {
				name = strings.TrimSpace(fmt.Sprintf("%v", v))
				break
			}
		}
		if name == "" {
			continue
		}
		typ := "Adult"
		for _, k := range []string{"type", "guestType", "guest_type"} {
			if v, ok := g[k]; ok && v != nil {
				if s := strings.TrimSpace(fmt.Sprintf("%v", v)); s != "" {
					typ = s
				}
				break
			}
		}
		out = append(out, map[string]interface{}{"fullName": name, "type": typ})
	}
	return out
}

// CreateBooking validates guest and room, creates the booking in its initial
// status with a pending payment, and applies the initial room hold from the
// lifecycle table inside the same transaction.
func (s *BookingService) CreateBooking(p CreateBookingParams) (models.Booking, error) {
	var result models.Booking

	initial := p.InitialStatus
	if initial == "" {
		initial = models.BookingPending
	}
	plan, err := s.Machine.Plan("", initial)
	if err != nil {
		return result, err
	}

	checkIn, err := utils.ParseStayDate(p.CheckIn)
	if err != nil {
		return result, fmt.Errorf("validation: invalid check_in: %w", err)
	}
	checkOut, err := utils.ParseStayDate(p.CheckOut)
	if err != nil {
		return result, fmt.Errorf("validation: invalid check_out: %w", err)
	}
	if checkIn != nil && checkOut != nil && !checkOut.After(*checkIn) {
		return result, fmt.Errorf("validation: check_out must be after check_in")
	}

	adults := p.Adults
	if adults <= 0 {
		adults = 1
	}
	children := p.Children
	if children < 0 {
		children = 0
	}

	var guest models.Guest
	if err := s.DB.First(&guest, p.GuestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result, ErrGuestNotFound
		}
		return result, fmt.Errorf("db error checking guest: %w", err)
	}

	accompanyingJSON, err := json.Marshal(normalizeGuestList(p.GuestList))
	if err != nil {
		return result, fmt.Errorf("failed to encode guest list: %w", err)
	}

	var bookingID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, p.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		booking := models.Booking{
			GuestID:            p.GuestID,
			RoomID:             p.RoomID,
			ReferenceCode:      utils.NewReferenceCode(),
			Status:             initial,
			PaymentStatus:      models.PaymentPending,
			CheckIn:            checkIn,
			CheckOut:           checkOut,
			Nights:             utils.CalculateNights(checkIn, checkOut),
			TotalPrice:         p.TotalPrice,
			Adults:             adults,
			Children:           children,
			AccompanyingGuests: datatypes.JSON(accompanyingJSON),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		bookingID = booking.ID

		if plan.RoomStatus != nil && room.Status != *plan.RoomStatus {
			room.Status = *plan.RoomStatus
			if err := tx.Save(&room).Error; err != nil {
				return fmt.Errorf("failed to update room %d status: %w", room.ID, err)
			}
		}
		return nil
	})
	if txErr != nil {
		return result, txErr
	}

	if err := s.DB.Preload("Guest").Preload("Room").Preload("Room.RoomType").First(&result, bookingID).Error; err != nil {
		return result, err
	}

	// best-effort; a confirmed booking greets the guest immediately
	for _, kind := range plan.Notifications {
		if err := s.Notifier.Send(kind, result); err != nil {
			log.Printf("notification %s for booking %d failed: %v", kind, result.ID, err)
		}
	}

	return result, nil
}

// GetAllWithRelations returns bookings newest first with guest and room loaded.
func (s *BookingService) GetAllWithRelations() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Guest").
		Preload("Room").
		Preload("Room.RoomType").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Guest").Preload("Room").Preload("Room.RoomType").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}

func (s *BookingService) GetByReference(ref string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Guest").Preload("Room").Where("reference_code = ?", ref).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}
