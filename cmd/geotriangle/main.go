package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pschou/go-params"
	"github.com/twpayne/go-kml"

	"triangle-survey/internal/adapters/distance"
	"triangle-survey/internal/domain"
	"triangle-survey/internal/geodesy"
	"triangle-survey/internal/services"
)

var debug *bool
var version = ""

func main() {
	params.Usage = func() {
		fmt.Fprintf(os.Stderr, "geotriangle - Great-circle distance tables and spherical vs planar triangle\n"+
			"angles from airport CSV files (code,name,lat,lon in degrees).  Version: %s\n\n"+
			"Usage: %s [options...] [files...]\n\n", version, os.Args[0])
		params.PrintDefaults()
	}
	debug = params.Pres("debug", "Verbose output")
	unit := params.String("u unit", "miles", "Unit for the Earth radius (miles or km)", "UNIT")
	triangle := params.String("t triangle", "", "Solve the triangle between three station codes", "A,B,C")
	params.GroupingSet("KML")
	name := params.String("N name", "geotriangle", "Name to use for the base KML folder", "TEXT")
	kmlFile := params.String("kml", "", "Export stations and triangle to KML file", "FILENAME")
	params.CommandLine.Indent = 2
	params.Parse()

	var sphere geodesy.Sphere
	switch strings.ToLower(*unit) {
	case "miles":
		sphere = geodesy.NewSphere(geodesy.EarthRadiusMiles)
	case "km":
		sphere = geodesy.NewSphere(geodesy.EarthRadiusKilometers)
	default:
		log.Fatalf("unit must be miles or km, got %q", *unit)
	}

	// Load every station file named on the command line.
	var stations []*domain.Airport
	for _, f := range params.Args() {
		if f == "" {
			continue
		}
		fh, err := os.Open(f)
		if err != nil {
			log.Fatalf("Error reading station file %q, %s", f, err)
		}

		var batch []*domain.Airport
		if err := gocsv.UnmarshalFile(fh, &batch); err != nil {
			fh.Close()
			log.Fatalf("Error parsing station file %q, %s", f, err)
		}
		fh.Close()

		if *debug {
			log.Printf("file=%s stations=%d", f, len(batch))
		}
		stations = append(stations, batch...)
	}

	if len(stations) == 0 {
		params.Usage()
		os.Exit(1)
	}

	ctx := context.Background()
	provider := distance.NewGreatCircleProvider(sphere)

	legs, err := services.DistanceTable(ctx, stations, provider)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%-5s %-5s %12s\n", "FROM", "TO", strings.ToUpper(*unit))
	for _, leg := range legs {
		fmt.Printf("%-5s %-5s %12.2f\n", leg.From, leg.To, leg.Distance)
	}

	// Solve the requested triangle, remembering the picked stations for
	// the KML export below.
	var triStations []*domain.Airport
	if *triangle != "" {
		codes := strings.Split(*triangle, ",")
		if len(codes) != 3 {
			log.Fatalf("triangle needs exactly three codes, got %q", *triangle)
		}

		var vertices [3]services.Vertex
		for i, code := range codes {
			st, ok := findStation(stations, strings.TrimSpace(code))
			if !ok {
				log.Fatalf("unknown station code %q", code)
			}
			vertices[i] = services.Vertex{Label: st.Code, Position: st.Position()}
			triStations = append(triStations, st)
		}

		survey, err := services.SurveyTriangle(ctx, vertices, provider, sphere)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("\nTriangle %s-%s-%s\n", vertices[0].Label, vertices[1].Label, vertices[2].Label)
		fmt.Printf("  sides: a=%.2f b=%.2f c=%.2f\n", survey.Sides.A, survey.Sides.B, survey.Sides.C)
		fmt.Printf("  spherical: A=%9.4f  B=%9.4f  C=%9.4f  sum=%9.4f\n",
			survey.Spherical.A, survey.Spherical.B, survey.Spherical.C, survey.Spherical.Sum)
		fmt.Printf("  planar:    A=%9.4f  B=%9.4f  C=%9.4f  sum=%9.4f\n",
			survey.Planar.A, survey.Planar.B, survey.Planar.C, survey.Planar.Sum)
		fmt.Printf("  spherical excess: %.4f degrees\n", survey.ExcessDegrees)
	}

	// Write out KML
	if *kmlFile != "" {
		kmlf, err := os.Create(*kmlFile)
		if err != nil {
			log.Fatal(err)
		}
		defer kmlf.Close()

		var stationMarks []kml.Element
		for _, st := range stations {
			stationMarks = append(stationMarks,
				kml.Placemark(
					kml.Name(st.Code),
					kml.Description(st.Name),
					kml.Point(kml.Coordinates(kml.Coordinate{Lon: st.Lon, Lat: st.Lat})),
				),
			)
		}

		elements := []kml.Element{
			kml.Name(*name),
			kml.Open(true),
			kml.Folder(
				append([]kml.Element{
					kml.Name("Stations"),
				},
					stationMarks...,
				)...,
			),
		}

		if len(triStations) == 3 {
			ring := make([]kml.Coordinate, 0, 4)
			for _, st := range append(triStations, triStations[0]) {
				ring = append(ring, kml.Coordinate{Lon: st.Lon, Lat: st.Lat})
			}
			elements = append(elements,
				kml.Placemark(
					kml.Name("Triangle"),
					kml.LineString(
						kml.Tessellate(true),
						kml.Coordinates(ring...)),
				),
			)
		}

		result := kml.KML(kml.Document(elements...))
		result.WriteIndent(kmlf, "", "  ")
	}
}

// find the station in the slice with said code
func findStation(stations []*domain.Airport, code string) (*domain.Airport, bool) {
	for _, st := range stations {
		if strings.EqualFold(st.Code, code) {
			return st, true
		}
	}
	return nil, false
}
