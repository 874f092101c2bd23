package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tonimelisma/onedrive-live/pkg/onedrive"
)

func TestDriveRootLogic(t *testing.T) {
	mockSDK := &MockSDK{
		GetRootFunc: func(accessToken string) (*onedrive.Drive, error) {
			assert.Equal(t, testAccessToken, accessToken)
			return &onedrive.Drive{
				ID:             "folder.8c8ce076ca27823f",
				Name:           "SkyDrive",
				Count:          12,
				Size:           1048576,
				UploadLocation: "https://apis.live.net/v5.0/folder.8c8ce076ca27823f/files/",
				Type:           onedrive.KindFolder,
			}, nil
		},
	}

	app := newTestApp(t, mockSDK)

	output := captureOutput(t, func() {
		err := driveRootLogic(app, newTestCmd())
		assert.NoError(t, err)
	})

	assert.Contains(t, output, "Drive Root:")
	assert.Contains(t, output, "SkyDrive")
	assert.Contains(t, output, "folder.8c8ce076ca27823f")
	assert.Contains(t, output, "1.0 MiB")
}

func TestDriveQuotaLogic(t *testing.T) {
	mockSDK := &MockSDK{
		GetQuotaFunc: func(string) (*onedrive.Quota, error) {
			return &onedrive.Quota{Quota: 2000000000, Available: 1000000000}, nil
		},
	}

	app := newTestApp(t, mockSDK)

	output := captureOutput(t, func() {
		err := driveQuotaLogic(app, newTestCmd())
		assert.NoError(t, err)
	})

	assert.Contains(t, output, "Drive Quota Information")
	assert.Contains(t, output, "Total Space: 1.9 GiB")
	assert.Contains(t, output, "Used Space:  953.7 MiB")
	assert.Contains(t, output, "Free Space:  953.7 MiB")
}

func TestDriveQuotaLogicNoBody(t *testing.T) {
	app := newTestApp(t, &MockSDK{})

	output := captureOutput(t, func() {
		assert.NoError(t, driveQuotaLogic(app, newTestCmd()))
	})
	assert.Contains(t, output, "No quota returned.")
}
