package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"triangle-survey/internal/adapters/distance"
	"triangle-survey/internal/domain"
	"triangle-survey/internal/geodesy"
	"triangle-survey/internal/services"
)

// main is the flat-earth sanity check composition root.
// It wires the haversine provider to the survey service and prints one
// airport triangle under spherical and planar geometry.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	unit := getEnv("EARTH_RADIUS_UNIT", "miles")
	sphere, err := sphereForUnit(unit)
	if err != nil {
		log.Fatal(err)
	}

	// Haneda, JFK and LAX make a pleasantly lopsided Pacific triangle.
	vertices := [3]services.Vertex{
		{Label: "HND", Position: domain.NewCoordinate(35.55, 139.8)},
		{Label: "JFK", Position: domain.NewCoordinate(40.64, -73.78)},
		{Label: "LAX", Position: domain.NewCoordinate(33.94, -118.41)},
	}

	provider := distance.NewGreatCircleProvider(sphere)
	survey, err := services.SurveyTriangle(context.Background(), vertices, provider, sphere)
	if err != nil {
		log.Fatal(err)
	}

	printSurvey(survey, unit)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func sphereForUnit(unit string) (geodesy.Sphere, error) {
	switch strings.ToLower(unit) {
	case "miles":
		return geodesy.NewSphere(geodesy.EarthRadiusMiles), nil
	case "km":
		return geodesy.NewSphere(geodesy.EarthRadiusKilometers), nil
	}
	return geodesy.Sphere{}, fmt.Errorf("EARTH_RADIUS_UNIT must be miles or km, got %q", unit)
}

func printSurvey(s *services.TriangleSurvey, unit string) {
	fmt.Printf("Triangle %s-%s-%s (distances in %s)\n",
		s.Vertices[0].Label, s.Vertices[1].Label, s.Vertices[2].Label, unit)
	fmt.Printf("  side a (%s-%s): %10.2f\n", s.Vertices[1].Label, s.Vertices[2].Label, s.Sides.A)
	fmt.Printf("  side b (%s-%s): %10.2f\n", s.Vertices[0].Label, s.Vertices[2].Label, s.Sides.B)
	fmt.Printf("  side c (%s-%s): %10.2f\n", s.Vertices[0].Label, s.Vertices[1].Label, s.Sides.C)
	fmt.Printf("  spherical: A=%9.4f  B=%9.4f  C=%9.4f  sum=%9.4f\n",
		s.Spherical.A, s.Spherical.B, s.Spherical.C, s.Spherical.Sum)
	fmt.Printf("  planar:    A=%9.4f  B=%9.4f  C=%9.4f  sum=%9.4f\n",
		s.Planar.A, s.Planar.B, s.Planar.C, s.Planar.Sum)
	fmt.Printf("  spherical excess: %.4f degrees\n", s.ExcessDegrees)
}
