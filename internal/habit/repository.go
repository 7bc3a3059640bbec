package habit

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HabitRepository interface {
	Create(h *Habit) error
	FindAllByUserID(userID uuid.UUID) ([]*Habit, error)
	FindByID(id uuid.UUID) (*Habit, error)
	Update(h *Habit) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) HabitRepository {
	return &repository{db: db}
}

func (r *repository) Create(h *Habit) error {
	return r.db.Create(h).Error
}

func (r *repository) FindAllByUserID(userID uuid.UUID) ([]*Habit, error) {
	var habits []*Habit
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Habit, error) {
	var h Habit
	if err := r.db.First(&h, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *repository) Update(h *Habit) error {
	return r.db.Save(h).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Habit{}, "id = ?", id).Error
}
