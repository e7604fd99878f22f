// SPDX-License-Identifier: Apache-2.0

package store

const (
	createClientSchema = `
		CREATE TABLE IF NOT EXISTS searches (
			query      TEXT PRIMARY KEY,
			response   TEXT NOT NULL,
			fetched_at TIMESTAMP NOT NULL
		);
		CREATE TABLE IF NOT EXISTS profiles (
			person_id  INTEGER PRIMARY KEY,
			profile    TEXT NOT NULL,
			fetched_at TIMESTAMP NOT NULL
		);`

	saveSearch = `
		INSERT INTO searches (query, response, fetched_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (query) DO UPDATE SET
			response   = excluded.response,
			fetched_at = excluded.fetched_at;`

	getSearch = `
		SELECT response, fetched_at
		FROM searches
		WHERE query = $1;`

	saveProfile = `
		INSERT INTO profiles (person_id, profile, fetched_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (person_id) DO UPDATE SET
			profile    = excluded.profile,
			fetched_at = excluded.fetched_at;`

	getProfile = `
		SELECT profile
		FROM profiles
		WHERE person_id = $1;`

	pruneSearches = `
		DELETE FROM searches
		WHERE fetched_at < $1;`

	pruneProfiles = `
		DELETE FROM profiles
		WHERE fetched_at < $1;`
)
