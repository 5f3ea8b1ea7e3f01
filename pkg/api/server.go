// Package api provides the REST API server for Bach
package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/odysseia06/Bach/pkg/theory"
)

// @title Bach API
// @version 1.0
// @description API for music theory computations: pitches, intervals, chords and scales
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/pitch", handlePitch)
		v1.GET("/interval", handleInterval)
		v1.GET("/chord", handleChord)
		v1.GET("/scale", handleScale)
		v1.GET("/qualities", listQualities)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "bach",
	})
}

// listQualities godoc
// @Summary List supported chord qualities and scale names
// @Description Returns the chord quality and scale name vocabularies accepted by the other endpoints
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/qualities [get]
func listQualities(c *gin.Context) {
	chords := make([]string, 0, 18)
	for q := theory.MajorTriad; q <= theory.Minor9; q++ {
		chords = append(chords, q.String())
	}
	c.JSON(http.StatusOK, gin.H{
		"chords": chords,
		"scales": []string{"major", "minor", "harmonicminor", "pentatonic", "wholetone", "chromatic"},
	})
}

func pitchJSON(p theory.Pitch) gin.H {
	return gin.H{
		"scientific": p.String(),
		"name":       p.NoteName(),
		"octave":     p.Octave(),
		"midi":       p.MIDINumber(),
		"pitchClass": p.PitchClass(),
		"frequency":  p.Frequency(),
	}
}

// handlePitch godoc
// @Summary Look up a pitch
// @Description Resolves a pitch from exactly one of: scientific notation (name), frequency in Hz, or MIDI note number
// @Tags theory
// @Produce json
// @Param name query string false "Scientific pitch notation, e.g. C#4"
// @Param frequency query number false "Frequency in Hz (snapped to the nearest semitone)"
// @Param midi query int false "MIDI note number"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/pitch [get]
func handlePitch(c *gin.Context) {
	var pitch theory.Pitch

	switch {
	case c.Query("name") != "":
		p, err := theory.ParsePitch(c.Query("name"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pitch = p
	case c.Query("frequency") != "":
		hz, err := strconv.ParseFloat(c.Query("frequency"), 64)
		if err != nil || hz <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid frequency"})
			return
		}
		pitch = theory.NewPitchFromFrequency(hz)
	case c.Query("midi") != "":
		midi, err := strconv.Atoi(c.Query("midi"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid midi number"})
			return
		}
		pitch = theory.NewPitchFromMIDI(midi)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "one of name, frequency or midi is required"})
		return
	}

	c.JSON(http.StatusOK, pitchJSON(pitch))
}

// handleInterval godoc
// @Summary Derive the interval between two pitches
// @Description Computes the diatonic interval between two pitches in scientific notation, with its inversion
// @Tags theory
// @Produce json
// @Param from query string true "First pitch, e.g. C4"
// @Param to query string true "Second pitch, e.g. E4"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/interval [get]
func handleInterval(c *gin.Context) {
	from, err := theory.ParsePitch(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("from: %v", err)})
		return
	}
	to, err := theory.ParsePitch(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("to: %v", err)})
		return
	}

	iv := theory.IntervalBetweenPitches(from, to)
	inv := iv.Invert()
	c.JSON(http.StatusOK, gin.H{
		"interval":  iv.String(),
		"number":    iv.Number(),
		"quality":   iv.Quality().Name(),
		"semitones": iv.Semitones(),
		"cents":     iv.Cents(),
		"compound":  iv.IsCompound(),
		"inversion": gin.H{
			"interval":  inv.String(),
			"number":    inv.Number(),
			"quality":   inv.Quality().Name(),
			"semitones": inv.Semitones(),
		},
	})
}

// handleChord godoc
// @Summary Spell a chord
// @Description Expands a root pitch and chord quality into its interval recipe and pitches
// @Tags theory
// @Produce json
// @Param root query string true "Root pitch, e.g. C4"
// @Param quality query string false "Chord quality (default: major)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/chord [get]
func handleChord(c *gin.Context) {
	root, err := theory.ParsePitch(c.Query("root"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("root: %v", err)})
		return
	}
	quality, err := theory.ParseChordQuality(c.DefaultQuery("quality", "major"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chord := theory.NewChord(root, quality)
	intervals := make([]string, 0, len(chord.Intervals()))
	for _, iv := range chord.Intervals() {
		intervals = append(intervals, iv.String())
	}
	pitches := make([]gin.H, 0, len(intervals))
	for _, p := range chord.Pitches() {
		pitches = append(pitches, pitchJSON(p))
	}

	c.JSON(http.StatusOK, gin.H{
		"chord":     chord.String(),
		"root":      root.String(),
		"quality":   quality.String(),
		"intervals": intervals,
		"pitches":   pitches,
	})
}

// handleScale godoc
// @Summary Spell a scale
// @Description Builds a named scale on a tonic and returns its pitches, or a single degree when requested
// @Tags theory
// @Produce json
// @Param tonic query string true "Tonic pitch, e.g. C4"
// @Param name query string false "Scale name (default: major)"
// @Param degree query int false "1-based scale degree; degrees past the pattern continue into higher octaves"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/scale [get]
func handleScale(c *gin.Context) {
	tonic, err := theory.ParsePitch(c.Query("tonic"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("tonic: %v", err)})
		return
	}
	build, err := theory.ScaleFactory(c.DefaultQuery("name", "major"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scale := build(tonic)

	if degreeParam := c.Query("degree"); degreeParam != "" {
		degree, err := strconv.Atoi(degreeParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid degree"})
			return
		}
		p, err := scale.PitchAtDegree(degree)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"scale":  scale.Name(),
			"degree": degree,
			"pitch":  pitchJSON(p),
		})
		return
	}

	pitches := make([]gin.H, 0, 8)
	for _, p := range scale.Pitches(true) {
		pitches = append(pitches, pitchJSON(p))
	}
	c.JSON(http.StatusOK, gin.H{
		"scale":   scale.Name(),
		"type":    scale.Type().String(),
		"tonic":   tonic.String(),
		"pitches": pitches,
	})
}
