package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/IsuruKaushika/UNITUNES-sub000/config"
	"github.com/IsuruKaushika/UNITUNES-sub000/controllers"
	"github.com/IsuruKaushika/UNITUNES-sub000/media"
	"github.com/IsuruKaushika/UNITUNES-sub000/middleware"
	"github.com/IsuruKaushika/UNITUNES-sub000/models"
)

// Deps is everything the route table wires into the controllers.
type Deps struct {
	Cfg   *config.Config
	Rdb   *redis.Client
	Media media.Store

	Boardings   controllers.BoardingStore
	Taxis       controllers.ResourceStore[models.Taxi]
	Shops       controllers.ResourceStore[models.Shop]
	Pharmacies  controllers.ResourceStore[models.Pharmacy]
	MediCenters controllers.ResourceStore[models.MediCenter]
	Skills      controllers.ResourceStore[models.Skill]
	Ads         controllers.ResourceStore[models.Ad]
	RentItems   controllers.ResourceStore[models.RentItem]
	Students    controllers.AccountStore[models.Student]
	Providers   controllers.AccountStore[models.Provider]

	// MediaHandler serves GridFS-backed files; nil when Cloudinary hosts the
	// images.
	MediaHandler http.Handler
}

func Routes(router *mux.Router, d *Deps) {
	router.Use(middleware.Metrics)

	authed := middleware.Auth(d.Cfg)
	adminOnly := middleware.RequireAdmin(d.Cfg)

	// Auth routes
	router.HandleFunc("/api/user/sturegister", controllers.StudentRegister(d.Cfg, d.Students)).Methods("POST")
	router.HandleFunc("/api/user/stulogin", controllers.StudentLogin(d.Cfg, d.Students)).Methods("POST")
	router.HandleFunc("/api/user/serregister", controllers.ProviderRegister(d.Cfg, d.Providers)).Methods("POST")
	router.HandleFunc("/api/user/serlogin", controllers.ProviderLogin(d.Cfg, d.Providers)).Methods("POST")
	router.HandleFunc("/api/user/admin", controllers.AdminLogin(d.Cfg)).Methods("POST")

	// Boarding: the one resource with per-record ownership.
	router.Handle("/api/boarding/add", authed(controllers.AddBoarding(d.Boardings, d.Media, d.Rdb))).Methods("POST")
	router.HandleFunc("/api/boarding/list", controllers.ListBoardings(d.Boardings, d.Rdb)).Methods("GET")
	router.HandleFunc("/api/boarding/single", controllers.SingleBoarding(d.Boardings)).Methods("POST")
	router.Handle("/api/boarding/remove", authed(controllers.RemoveBoarding(d.Boardings, d.Rdb))).Methods("POST")
	router.Handle("/api/boarding/update", authed(controllers.UpdateBoarding(d.Boardings, d.Media, d.Rdb))).Methods("POST")
	router.Handle("/api/boarding/my-list", authed(controllers.MyBoardings(d.Boardings))).Methods("POST")

	// Owner-less resources: mutations are admin-gated, reads are public.
	router.Handle("/api/taxi/add", adminOnly(controllers.AddTaxi(d.Taxis, d.Media))).Methods("POST")
	router.HandleFunc("/api/taxi/list", controllers.ListTaxis(d.Taxis)).Methods("GET")
	router.Handle("/api/taxi/remove", adminOnly(controllers.RemoveTaxi(d.Taxis))).Methods("POST")
	router.HandleFunc("/api/taxi/single", controllers.SingleTaxi(d.Taxis)).Methods("POST")

	router.Handle("/api/shop/add", adminOnly(controllers.AddShop(d.Shops, d.Media))).Methods("POST")
	router.HandleFunc("/api/shop/list", controllers.ListShops(d.Shops)).Methods("GET")
	router.Handle("/api/shop/remove", adminOnly(controllers.RemoveShop(d.Shops))).Methods("POST")
	router.HandleFunc("/api/shop/single", controllers.SingleShop(d.Shops)).Methods("POST")

	router.Handle("/api/pharmacy/add", adminOnly(controllers.AddPharmacy(d.Pharmacies, d.Media))).Methods("POST")
	router.HandleFunc("/api/pharmacy/list", controllers.ListPharmacies(d.Pharmacies)).Methods("GET")
	router.Handle("/api/pharmacy/remove", adminOnly(controllers.RemovePharmacy(d.Pharmacies))).Methods("POST")
	router.HandleFunc("/api/pharmacy/single", controllers.SinglePharmacy(d.Pharmacies)).Methods("POST")

	router.Handle("/api/medicenter/add", adminOnly(controllers.AddMediCenter(d.MediCenters, d.Media))).Methods("POST")
	router.HandleFunc("/api/medicenter/list", controllers.ListMediCenters(d.MediCenters)).Methods("GET")
	router.Handle("/api/medicenter/remove", adminOnly(controllers.RemoveMediCenter(d.MediCenters))).Methods("POST")
	router.HandleFunc("/api/medicenter/single", controllers.SingleMediCenter(d.MediCenters)).Methods("POST")

	router.Handle("/api/skill/add", adminOnly(controllers.AddSkill(d.Skills, d.Media))).Methods("POST")
	router.HandleFunc("/api/skill/list", controllers.ListSkills(d.Skills)).Methods("GET")
	router.Handle("/api/skill/remove", adminOnly(controllers.RemoveSkill(d.Skills))).Methods("POST")
	router.HandleFunc("/api/skill/single", controllers.SingleSkill(d.Skills)).Methods("POST")
	router.Handle("/api/skill/status", adminOnly(controllers.SetSkillStatus(d.Skills))).Methods("POST")

	router.Handle("/api/ad/add", adminOnly(controllers.AddAd(d.Ads, d.Media))).Methods("POST")
	router.HandleFunc("/api/ad/list", controllers.ListAds(d.Ads)).Methods("GET")
	router.Handle("/api/ad/remove", adminOnly(controllers.RemoveAd(d.Ads))).Methods("POST")
	router.HandleFunc("/api/ad/single", controllers.SingleAd(d.Ads)).Methods("POST")

	router.Handle("/api/rentitem/add", adminOnly(controllers.AddRentItem(d.RentItems, d.Media))).Methods("POST")
	router.HandleFunc("/api/rentitem/list", controllers.ListRentItems(d.RentItems)).Methods("GET")
	router.Handle("/api/rentitem/remove", adminOnly(controllers.RemoveRentItem(d.RentItems))).Methods("POST")
	router.HandleFunc("/api/rentitem/single", controllers.SingleRentItem(d.RentItems)).Methods("POST")
	router.Handle("/api/rentitem/availability", adminOnly(controllers.SetRentItemAvailability(d.RentItems))).Methods("POST")

	if d.MediaHandler != nil {
		router.Handle("/api/media/{id}", d.MediaHandler).Methods("GET")
	}

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}
