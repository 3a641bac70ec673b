package tmdb

import "github.com/jsutton/marquee/internal/domain"

// mapSummaries converts list results to domain movie summaries.
func mapSummaries(results []movieResult) []domain.MovieSummary {
	summaries := make([]domain.MovieSummary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, mapSummary(r))
	}
	return summaries
}

func mapSummary(r movieResult) domain.MovieSummary {
	return domain.MovieSummary{
		ID:          r.ID,
		Title:       r.Title,
		PosterPath:  r.PosterPath,
		VoteAverage: r.VoteAverage,
		ReleaseDate: r.ReleaseDate,
		Overview:    r.Overview,
		GenreIDs:    r.GenreIDs,
	}
}

// mapDetail converts the flat detail response to a domain movie detail.
func mapDetail(r detailResponse) domain.MovieDetail {
	detail := domain.MovieDetail{
		MovieSummary: domain.MovieSummary{
			ID:          r.ID,
			Title:       r.Title,
			PosterPath:  r.PosterPath,
			VoteAverage: r.VoteAverage,
			ReleaseDate: r.ReleaseDate,
			Overview:    r.Overview,
		},
		Runtime:    r.Runtime,
		TrailerKey: pickTrailer(r.Videos.Results),
	}

	detail.Genres = make([]domain.Genre, 0, len(r.Genres))
	for _, g := range r.Genres {
		detail.Genres = append(detail.Genres, domain.Genre{ID: g.ID, Name: g.Name})
		detail.GenreIDs = append(detail.GenreIDs, g.ID)
	}

	detail.Cast = make([]domain.CastMember, 0, len(r.Credits.Cast))
	for _, c := range r.Credits.Cast {
		detail.Cast = append(detail.Cast, domain.CastMember{
			ID:          c.ID,
			Name:        c.Name,
			Character:   c.Character,
			ProfilePath: c.ProfilePath,
		})
	}

	return detail
}

// pickTrailer selects the trailer key from the appended videos. YouTube
// trailers win over other sites; the first trailer wins over later ones.
func pickTrailer(videos []video) string {
	var fallback string
	for _, v := range videos {
		if v.Type != "Trailer" || v.Key == "" {
			continue
		}
		if v.Site == "YouTube" {
			return v.Key
		}
		if fallback == "" {
			fallback = v.Key
		}
	}
	return fallback
}
