package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/runloopai/rlctl/internal/api"
	"github.com/runloopai/rlctl/internal/errors"
)

var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Manage stored objects",
}

var objectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List objects",
	RunE:  runObjectList,
}

var objectGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show object details",
	Args:  cobra.ExactArgs(1),
	RunE:  runObjectGet,
}

var objectDownloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Download an object's contents",
	Args:  cobra.ExactArgs(1),
	RunE:  runObjectDownload,
}

var (
	objectListLimit       int
	objectListName        string
	objectListContentType string
	objectListState       string
	objectListSearch      string
	objectListPublic      bool
	objectDownloadOutput  string
)

func init() {
	objectListCmd.Flags().IntVarP(&objectListLimit, "limit", "n", 0, "Maximum objects to list")
	objectListCmd.Flags().StringVar(&objectListName, "name", "", "Filter by exact name")
	objectListCmd.Flags().StringVar(&objectListContentType, "content-type", "", "Filter by content type")
	objectListCmd.Flags().StringVar(&objectListState, "state", "", "Filter by state")
	objectListCmd.Flags().StringVar(&objectListSearch, "search", "", "Substring match on name")
	objectListCmd.Flags().BoolVar(&objectListPublic, "public", false, "List public objects instead of your own")

	objectDownloadCmd.Flags().StringVarP(&objectDownloadOutput, "output", "o", "", "Destination file (defaults to the object name)")

	objectCmd.AddCommand(objectListCmd, objectGetCmd, objectDownloadCmd)
	rootCmd.AddCommand(objectCmd)
}

func runObjectList(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	list, err := a.Client.ListObjects(ctx, api.ObjectListParams{
		Limit:       objectListLimit,
		Name:        objectListName,
		ContentType: objectListContentType,
		State:       objectListState,
		Search:      objectListSearch,
		Public:      objectListPublic,
	})
	if err != nil {
		return errors.APIError("list objects", err)
	}

	if len(list.Objects) == 0 {
		logInfo("No objects found")
		return nil
	}
	for _, o := range list.Objects {
		fmt.Printf("%-28s %-32s %-16s %d\n", o.ID, o.Name, o.ContentType, o.SizeBytes)
	}
	if list.HasMore {
		logInfo("More objects available; rerun with a larger --limit")
	}
	return nil
}

func runObjectGet(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	o, err := a.Client.GetObject(ctx, args[0])
	if err != nil {
		if api.IsNotFound(err) {
			return errors.ObjectNotFound(args[0])
		}
		return errors.APIError("get object", err)
	}

	kvLine("ID", o.ID)
	kvLine("Name", o.Name)
	kvLine("Content-Type", o.ContentType)
	kvLine("State", o.State)
	kvLine("Size", o.SizeBytes)
	kvLine("Public", o.Public)
	return nil
}

func runObjectDownload(cmd *cobra.Command, args []string) error {
	id := args[0]

	a, err := getApp()
	if err != nil {
		return err
	}
	ctx, cancel := cmdContext()
	defer cancel()

	o, err := a.Client.GetObject(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			return errors.ObjectNotFound(id)
		}
		return errors.APIError("get object", err)
	}

	url, err := a.Client.ObjectDownloadURL(ctx, id, 0)
	if err != nil {
		return errors.APIError("get download url", err)
	}

	dest := objectDownloadOutput
	if dest == "" {
		dest = filepath.Base(o.Name)
		if dest == "" || dest == "." || dest == "/" {
			dest = o.ID
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.DownloadError("build download request", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return errors.DownloadError("download object", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.DownloadError(fmt.Sprintf("download object: status %d", resp.StatusCode), nil)
	}

	f, err := os.Create(dest)
	if err != nil {
		return errors.DownloadError("create destination file", err)
	}
	defer f.Close()

	n, err := io.Copy(f, resp.Body)
	if err != nil {
		return errors.DownloadError("write object contents", err)
	}

	logSuccess("Downloaded %s to %s (%d bytes)", o.Name, dest, n)
	return nil
}
