package main

import (
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/clubsite/internal/storage"
)

// InitStorage selects the brochure mirror backend.
func InitStorage(env Environment) (storage.Storage, error) {
	if env.UseSpaces {
		spacesStorage, err := storage.NewSpacesStorage(
			env.SpacesEndpoint,
			env.SpacesRegion,
			env.SpacesBucket,
			env.SpacesCDNURL,
			env.SpacesAccessKey,
			env.SpacesSecretKey,
		)
		if err != nil {
			return nil, err
		}
		log.Info().Str("cdn", env.SpacesCDNURL).Msg("using DigitalOcean Spaces storage")
		return spacesStorage, nil
	}

	local := storage.NewLocalStorage(env.UploadsDir, "/uploads")
	log.Info().Str("dir", local.Dir()).Msg("using local file storage")
	return local, nil
}
