package installer

import (
	"io"
	"net/http"
	"os"

	"github.com/arthur-debert/nvup/pkg/errors"
	"github.com/arthur-debert/nvup/pkg/logging"
)

// Downloader fetches a URL to a local file.
type Downloader func(url, dest string) error

// Download fetches url into dest. The transfer is blocking with no
// timeout, matching the rest of the installer's synchronous model.
func Download(url, dest string) error {
	logger := logging.GetLogger("installer.download")
	logger.Info().Str("url", url).Str("dest", dest).Msg("Downloading")

	resp, err := http.Get(url)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDownloadFailed, "cannot fetch %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf(errors.ErrDownloadFailed, "fetching %s returned %s", url, resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDownloadFailed, "cannot create %s", dest)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return errors.Wrapf(err, errors.ErrDownloadFailed, "writing %s failed", dest)
	}
	return nil
}
