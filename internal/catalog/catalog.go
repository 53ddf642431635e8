// Package catalog serves the marketplace listings. The seed data carries a
// collection-level schema version: bumping ListingsVersion forces cached
// listings to be replaced on the next load, so new seed data is never masked
// by a stale cache.
package catalog

import (
	"pawfinder/internal/bus"
	"pawfinder/internal/domain"
	"pawfinder/internal/storage"
)

// Slot is the collection key for the cached listings; the schema version
// lives in the sibling version slot.
const Slot = "catalog-listings"

// ListingsVersion is bumped whenever the seed listings change.
const ListingsVersion = 4

type Service struct {
	store *storage.Store
	bus   *bus.Bus
}

func New(store *storage.Store, b *bus.Bus) *Service {
	return &Service{store: store, bus: b}
}

// Listings returns the catalog, reseeding it first when the stored schema
// version differs from ListingsVersion.
func (s *Service) Listings() []domain.Listing {
	return storage.LoadVersioned(s.store, Slot, ListingsVersion, SeedListings)
}

// Reseed unconditionally replaces the cached catalog with the current seed.
func (s *Service) Reseed() []domain.Listing {
	listings := SeedListings()
	storage.ReplaceVersioned(s.store, Slot, ListingsVersion, listings)
	s.bus.Publish(bus.ListingsUpdated)
	return listings
}

// Import replaces the cached catalog with externally supplied listings,
// tagged with the current schema version.
func (s *Service) Import(listings []domain.Listing) {
	storage.ReplaceVersioned(s.store, Slot, ListingsVersion, listings)
	s.bus.Publish(bus.ListingsUpdated)
}

// SeedListings is the authoritative catalog for the current version.
func SeedListings() []domain.Listing {
	return []domain.Listing{
		{ListingID: "1", Breed: "Golden Retriever", Price: 200000, AgeMonths: 8, Image: "https://images.unsplash.com/photo-1633722715463-d30f4f325e24?w=600&h=400&fit=crop", Description: "Friendly and playful golden retriever puppy. Vaccinated and trained.", Tags: []string{"Pure Breed", "Vaccinated"}},
		{ListingID: "2", Breed: "German Shepherd", Price: 250000, AgeMonths: 10, Image: "https://wallpapers.com/images/hd/bright-german-shepherd-dog-az4sanyk2mebg0y7.jpg", Description: "Intelligent and loyal German Shepherd. Excellent guard dog.", Tags: []string{"Pure Breed", "Trained"}},
		{ListingID: "3", Breed: "Labrador Retriever", Price: 180000, AgeMonths: 6, Image: "https://www.101dogbreeds.com/wp-content/uploads/2018/10/Labrador-Retriever-Images.jpg", Description: "Energetic and friendly Labrador. Great with kids.", Tags: []string{"Family Dog", "Vaccinated"}},
		{ListingID: "4", Breed: "Siberian Husky", Price: 280000, AgeMonths: 7, Image: "https://images.unsplash.com/photo-1605568427561-40dd23c2acea?w=600&h=400&fit=crop", Description: "Beautiful husky with striking blue eyes. Very energetic.", Tags: []string{"Blue Eyes", "Pure Breed"}},
		{ListingID: "5", Breed: "Beagle", Price: 150000, AgeMonths: 5, Image: "https://images.unsplash.com/photo-1505628346881-b72b27e84530?w=600&h=400&fit=crop", Description: "Adorable beagle puppy. Friendly and curious nature.", Tags: []string{"Small Size", "Playful"}},
		{ListingID: "6", Breed: "Poodle", Price: 220000, AgeMonths: 9, Image: "https://images.unsplash.com/photo-1616012804791-28941fc7347e?w=600&h=400&fit=crop", Description: "Elegant standard poodle. Hypoallergenic coat.", Tags: []string{"Hypoallergenic", "Intelligent"}},
		{ListingID: "7", Breed: "Rottweiler", Price: 240000, AgeMonths: 11, Image: "https://images.unsplash.com/photo-1567752881298-894bb81f9379?w=600&h=400&fit=crop", Description: "Strong and loyal Rottweiler. Excellent protector.", Tags: []string{"Guard Dog", "Pure Breed"}},
		{ListingID: "8", Breed: "Bulldog", Price: 210000, AgeMonths: 8, Image: "https://images.unsplash.com/photo-1583511655857-d19b40a7a54e?w=600&h=400&fit=crop", Description: "Calm and friendly bulldog. Great apartment dog.", Tags: []string{"Low Energy", "Friendly"}},
		{ListingID: "9", Breed: "Shih Tzu", Price: 120000, AgeMonths: 4, Image: "https://images.unsplash.com/photo-1534361960057-19889db9621e?w=600&h=400&fit=crop", Description: "Adorable Shih Tzu puppy. Perfect lap dog.", Tags: []string{"Small Size", "Affectionate"}},
		{ListingID: "10", Breed: "Boxer", Price: 190000, AgeMonths: 9, Image: "https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=600&h=400&fit=crop", Description: "Energetic boxer with great personality. Loves to play.", Tags: []string{"Athletic", "Playful"}},
		{ListingID: "11", Breed: "Dachshund", Price: 140000, AgeMonths: 6, Image: "https://images.unsplash.com/photo-1612536980005-3dbf9b57aec3?w=600&h=400&fit=crop", Description: "Cute dachshund with unique personality. Very loyal.", Tags: []string{"Small Size", "Unique"}},
		{ListingID: "12", Breed: "Yorkshire Terrier", Price: 160000, AgeMonths: 5, Image: "https://images.unsplash.com/photo-1560807707-8cc77767d783?w=600&h=400&fit=crop", Description: "Tiny and adorable Yorkie. Great for apartments.", Tags: []string{"Toy Size", "Energetic"}},
		{ListingID: "13", Breed: "Doberman", Price: 260000, AgeMonths: 10, Image: "https://images.unsplash.com/photo-1603907208859-2d3e0b6b0789?w=600&h=400&fit=crop", Description: "Alert and loyal Doberman. Excellent guard dog.", Tags: []string{"Guard Dog", "Intelligent"}},
		{ListingID: "14", Breed: "Pomeranian", Price: 130000, AgeMonths: 4, Image: "https://images.unsplash.com/photo-1591160690555-5debfba289f0?w=600&h=400&fit=crop", Description: "Fluffy Pomeranian puppy. Very cute and friendly.", Tags: []string{"Toy Size", "Fluffy"}},
		{ListingID: "15", Breed: "Cocker Spaniel", Price: 170000, AgeMonths: 7, Image: "https://images.unsplash.com/photo-1588943211346-0908a1fb0b01?w=600&h=400&fit=crop", Description: "Beautiful Cocker Spaniel. Gentle and loving nature.", Tags: []string{"Gentle", "Family Dog"}},
		{ListingID: "16", Breed: "Chow Chow", Price: 270000, AgeMonths: 8, Image: "https://images.unsplash.com/photo-1598133894008-61f7fdb8cc3a?w=600&h=400&fit=crop", Description: "Majestic Chow Chow with lion-like appearance. Independent.", Tags: []string{"Unique", "Pure Breed"}},
	}
}
