// File: database/repository/vehicle/vehicleMongoQueries.go
package vehicleRepo

import (
	"allride/models"

	"go.mongodb.org/mongo-driver/bson"
)

// availableFilter matches vehicles still visible in the catalog, optionally
// narrowed by city and type.
func availableFilter(city, vehicleType string) bson.M {
	filter := bson.M{"is_available": true}
	if city != "" {
		filter["city"] = city
	}
	if vehicleType != "" {
		filter["type"] = vehicleType
	}
	return filter
}

// purposeFilter extends availableFilter with the purpose clause. Vehicles
// listed for "both" are included in rent and sale listings alike.
func purposeFilter(purpose, city, vehicleType string) bson.M {
	filter := availableFilter(city, vehicleType)
	filter["purpose"] = bson.M{"$in": []string{purpose, models.PurposeBoth}}
	return filter
}

// ListAvailable retrieves catalog vehicles filtered by optional city and type.
func (r *MongoVehicleRepo) ListAvailable(city, vehicleType string) ([]models.Vehicle, error) {
	return r.Find(availableFilter(city, vehicleType), nil)
}

// ListForPurpose retrieves vehicles listed for the given purpose, including
// dual-purpose ones.
func (r *MongoVehicleRepo) ListForPurpose(purpose, city, vehicleType string) ([]models.Vehicle, error) {
	return r.Find(purposeFilter(purpose, city, vehicleType), nil)
}

// DistinctCities returns the cities with at least one available vehicle.
func (r *MongoVehicleRepo) DistinctCities() ([]string, error) {
	return r.Distinct("city", availableFilter("", ""))
}

// DistinctCitiesForPurpose returns the cities with at least one available
// vehicle for the given purpose.
func (r *MongoVehicleRepo) DistinctCitiesForPurpose(purpose string) ([]string, error) {
	return r.Distinct("city", purposeFilter(purpose, "", ""))
}

// CountAvailable counts catalog vehicles filtered by optional city and type.
func (r *MongoVehicleRepo) CountAvailable(city, vehicleType string) (int64, error) {
	return r.Count(availableFilter(city, vehicleType))
}

// CountForPurpose counts vehicles listed for the given purpose.
func (r *MongoVehicleRepo) CountForPurpose(purpose, city, vehicleType string) (int64, error) {
	return r.Count(purposeFilter(purpose, city, vehicleType))
}

// CountAll counts every vehicle document, including soft-deleted ones.
func (r *MongoVehicleRepo) CountAll() (int64, error) {
	return r.Count(bson.M{})
}

// CountUnderMaintenance counts vehicles flagged under maintenance.
func (r *MongoVehicleRepo) CountUnderMaintenance() (int64, error) {
	return r.Count(bson.M{"under_maintenance": true})
}
