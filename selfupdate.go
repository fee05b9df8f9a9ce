package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"

	"github.com/minio/selfupdate"
	"github.com/ulikunitz/xz"
	"golang.org/x/mod/semver"
)

var releasesAPI = "https://api.github.com"

// latestRelease returns the tag name of the newest GitHub release of repo.
func latestRelease(client *http.Client, repo string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", releasesAPI, repo)
	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub API returned HTTP %d", resp.StatusCode)
	}

	var release struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("parse release info: %w", err)
	}
	if !semver.IsValid(release.Name) {
		return "", fmt.Errorf("release name %q is not a semantic version", release.Name)
	}
	return release.Name, nil
}

// releaseAssetURL returns the download URL of the xz-compressed binary for a
// platform.
func releaseAssetURL(repo, tag, goos, goarch string) string {
	ext := "xz"
	if goos == "windows" {
		ext = "exe.xz"
	}
	return fmt.Sprintf("https://github.com/%s/releases/download/%s/dice-icons-%s-%s.%s",
		repo, tag, goos, goarch, ext)
}

func selfUpdate() {
	fmt.Printf("Current version: %s-%s\n", Version, CommitHash)

	client := &http.Client{}
	latest, err := latestRelease(client, GithubRepo)
	if err != nil {
		log.Fatalf("Failed to check for updates: %v", err)
	}
	fmt.Printf("Latest release: %s\n", latest)

	switch semver.Compare(latest, Version) {
	case -1:
		fmt.Println("You have a newer version than the latest release.")
		return
	case 0:
		fmt.Println("Already up to date.")
		return
	case 1:
		fmt.Println("New version available, upgrading...")
		if Version == "v0.0.0" {
			fmt.Print("Development build detected, press Enter to proceed: ")
			bufio.NewReader(os.Stdin).ReadBytes('\n')
		}
	}

	downloadURL := releaseAssetURL(GithubRepo, latest, runtime.GOOS, runtime.GOARCH)

	opts := selfupdate.Options{}
	if err := opts.CheckPermissions(); err != nil {
		fmt.Printf("Cannot update in place (permission denied).\nDownload manually: %s\n", downloadURL)
		return
	}

	fmt.Printf("Downloading %s...\n", downloadURL)
	resp, err := client.Get(downloadURL)
	if err != nil {
		log.Fatalf("Download failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Download returned HTTP %d", resp.StatusCode)
	}

	r, err := xz.NewReader(resp.Body)
	if err != nil {
		log.Fatalf("XZ decompression failed: %v", err)
	}

	if err := selfupdate.Apply(r, opts); err != nil {
		log.Fatalf("Update failed: %v", err)
	}

	fmt.Printf("Updated to %s successfully.\n", latest)
}
