package appliance

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// 噪音等级 Qt最静 M一般
var validSoundRatings = map[string]string{
	"Qt": "Quietest",
	"Qr": "Quieter",
	"Qu": "Quiet",
	"M":  "Moderate",
}

// Dishwasher 洗碗机 货号以4或5开头
type Dishwasher struct {
	Appliance
	Feature     string
	SoundRating string
}

func NewDishwasher(base Appliance, feature, soundRating string) (*Dishwasher, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	if KindOf(base.ItemNumber) != KindDishwasher {
		return nil, errors.Errorf("dishwasher item number must start with '4' or '5', got %s", base.ItemNumber)
	}
	if strings.TrimSpace(feature) == "" {
		return nil, errors.New("feature must not be empty")
	}
	if _, ok := validSoundRatings[soundRating]; !ok {
		return nil, errors.Errorf("sound rating must be one of Qt/Qr/Qu/M, got %s", soundRating)
	}
	return &Dishwasher{
		Appliance:   base,
		Feature:     feature,
		SoundRating: soundRating,
	}, nil
}

func (d *Dishwasher) SoundRatingDescription() string {
	if desc, ok := validSoundRatings[d.SoundRating]; ok {
		return desc
	}
	return "Unknown"
}

func (d *Dishwasher) Describe() string {
	var builder strings.Builder
	d.describeCommon(&builder)
	fmt.Fprintf(&builder, "Feature: %s\n", d.Feature)
	fmt.Fprintf(&builder, "Sound Rating: %s (%s)\n", d.SoundRating, d.SoundRatingDescription())
	return builder.String()
}

func (d *Dishwasher) FileFormat() string {
	fields := append(d.fileFormatCommon(),
		d.Feature,
		d.SoundRating,
	)
	return strings.Join(fields, ";")
}
