package zooplus

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"vetparser/internal/document"
)

// CSS selectors of the zooplus vet search results page.
const (
	listingSelector  = ".result-intro__details"
	titleSelector    = ".result-intro__title"
	subtitleSelector = ".result-intro__subtitle"
	hoursSelector    = ".daily-hours"
	addressSelector  = ".result-intro__address"
	ratingSelector   = ".star-rating"
	starSelector     = "span"
	reviewsSelector  = ".result-intro__rating__note"

	// ReadySelector appears once the first listing has been rendered.
	ReadySelector = titleSelector
)

var (
	ErrMissingField    = errors.New("required field missing")
	ErrMalformedNumber = errors.New("malformed number")
)

// ExtractAll parses a rendered results page and returns its listings in
// document order. The first bad listing aborts the page.
func ExtractAll(html string) ([]Record, error) {
	root, err := document.Parse(html)
	if err != nil {
		return nil, err
	}

	listings := root.SelectAll(listingSelector)
	records := make([]Record, 0, len(listings))
	for i, listing := range listings {
		rec, err := ExtractOne(listing)
		if err != nil {
			return nil, fmt.Errorf("listing %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ExtractOne converts one listing block into a Record. Only the clinic
// subtitle may be absent.
func ExtractOne(listing document.Node) (Record, error) {
	name, err := requiredText(listing, "name", titleSelector)
	if err != nil {
		return Record{}, err
	}

	var clinic *string
	if sub, ok := listing.SelectOne(subtitleSelector); ok {
		text := sub.Text()
		clinic = &text
	}

	hours, err := requiredText(listing, "reception_time", hoursSelector)
	if err != nil {
		return Record{}, err
	}

	address, err := requiredText(listing, "address", addressSelector)
	if err != nil {
		return Record{}, err
	}

	stars, ok := listing.SelectOne(ratingSelector)
	if !ok {
		return Record{}, missing("rating", ratingSelector)
	}

	caption, err := requiredText(listing, "num_reviews", reviewsSelector)
	if err != nil {
		return Record{}, err
	}
	reviews, err := parseReviewCount(caption)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Name:          name,
		Clinic:        clinic,
		ReceptionTime: hours,
		Address:       address,
		Rating:        stars.Count(starSelector),
		NumReviews:    reviews,
	}, nil
}

// parseReviewCount reads the leading number of a caption such as
// "128 Bewertungen".
func parseReviewCount(caption string) (float64, error) {
	fields := strings.Fields(caption)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: num_reviews: empty caption", ErrMalformedNumber)
	}
	n, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: num_reviews: %q", ErrMalformedNumber, fields[0])
	}
	return n, nil
}

func requiredText(n document.Node, field, selector string) (string, error) {
	found, ok := n.SelectOne(selector)
	if !ok {
		return "", missing(field, selector)
	}
	return found.Text(), nil
}

func missing(field, selector string) error {
	return fmt.Errorf("%w: %s (%s)", ErrMissingField, field, selector)
}
