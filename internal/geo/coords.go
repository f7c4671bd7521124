// Package geo извлекает координаты из ссылок Google Maps.
package geo

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrNoCoordinates ссылка не содержит координат
var ErrNoCoordinates = errors.New("google maps link is invalid or has no coordinates")

// Шаблоны проверяются по порядку, побеждает первое совпадение.
var coordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`),
	regexp.MustCompile(`!3d(-?\d+\.\d+)!4d(-?\d+\.\d+)`),
	regexp.MustCompile(`[?&]q=(-?\d+\.\d+),(-?\d+\.\d+)`),
}

// Coordinates широта и долгота
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// ExtractCoordinates ищет координаты в ссылке Google Maps.
// Поддерживаются формы "@lat,lng", "!3dlat!4dlng" и "?q=lat,lng".
func ExtractCoordinates(mapURL string) (Coordinates, error) {
	if mapURL == "" {
		return Coordinates{}, ErrNoCoordinates
	}

	for _, re := range coordPatterns {
		m := re.FindStringSubmatch(mapURL)
		if m == nil {
			continue
		}

		lat, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Coordinates{}, fmt.Errorf("failed to parse latitude: %w", err)
		}
		lng, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return Coordinates{}, fmt.Errorf("failed to parse longitude: %w", err)
		}

		// нулевые координаты считаются отсутствующими
		if lat == 0 || lng == 0 {
			return Coordinates{}, ErrNoCoordinates
		}

		return Coordinates{Latitude: lat, Longitude: lng}, nil
	}

	return Coordinates{}, ErrNoCoordinates
}

// EmbedURL возвращает ссылку для встраиваемой карты по координатам
func EmbedURL(lat, lng float64) string {
	return fmt.Sprintf("https://maps.google.com/maps?q=%s,%s&z=15&output=embed",
		strconv.FormatFloat(lat, 'f', -1, 64), strconv.FormatFloat(lng, 'f', -1, 64))
}

// LinkURL возвращает ссылку Google Maps, из которой ExtractCoordinates
// снова получит те же координаты
func LinkURL(lat, lng float64) string {
	return fmt.Sprintf("https://maps.google.com/?q=%.6f,%.6f", lat, lng)
}
