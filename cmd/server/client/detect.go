package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	simulatorv1alpha1 "github.com/KirkDiggler/tw-simulator/api/simulator/v1alpha1"
)

var detectCmd = &cobra.Command{
	Use:   "detect [image-file]",
	Short: "Detect equipment from a screenshot",
	Long: `Send a screenshot of the equipment screen and print the detected loadout
as YAML, ready to pass to calculate --loadout.`,
	Args: cobra.ExactArgs(1),
	RunE: detect,
}

func detect(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	dataURL, err := imageDataURL(data)
	if err != nil {
		return err
	}

	client, cleanup, err := createSimulatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.DetectEquipment(ctx, &simulatorv1alpha1.DetectEquipmentRequest{ImageDataURL: dataURL})
	if err != nil {
		return fmt.Errorf("failed to detect equipment: %w", err)
	}

	out, err := marshalLoadoutYAML(resp.Equipment)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

// imageDataURL wraps image bytes in a base64 data URL, sniffing the media type
func imageDataURL(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("image file is empty")
	}

	mediaType := http.DetectContentType(data)
	if !strings.HasPrefix(mediaType, "image/") {
		return "", fmt.Errorf("file does not look like an image (%s)", mediaType)
	}

	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
