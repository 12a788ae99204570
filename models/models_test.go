package models

import (
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err = Init(db); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository[Guest](db)

	if _, err := repo.GetByID(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID() on an empty table error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete() on an empty table error = %v, want ErrNotFound", err)
	}

	for _, name := range []string{"Ann", "Bob", "Cid"} {
		if err := repo.Create(&Guest{Name: name, Image: "guests/" + name + ".png"}); err != nil {
			t.Fatal(err)
		}
	}
	list, err := repo.List("id DESC")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 || list[0].Name != "Cid" {
		t.Fatalf("List() = %+v", list)
	}

	guest, err := repo.GetByID(list[2].ID)
	if err != nil {
		t.Fatal(err)
	}
	guest.Details = "Stayed a week"
	if err = repo.Update(guest); err != nil {
		t.Fatal(err)
	}
	if got, _ := repo.GetByID(guest.ID); got.Details != "Stayed a week" {
		t.Errorf("Update() not persisted, got %q", got.Details)
	}

	if err = repo.Delete(guest.ID); err != nil {
		t.Fatal(err)
	}
	if _, err = repo.GetByID(guest.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after Delete() error = %v", err)
	}
}

func TestSetRoomPrice(t *testing.T) {
	db := newTestDB(t)
	if price, err := CurrentRoomPrice(db); err != nil || price != nil {
		t.Fatalf("CurrentRoomPrice() = %v, %v, want nil, nil", price, err)
	}
	offer := 90.5
	tests := []struct {
		name  string
		price RoomPrice
	}{
		{"first", RoomPrice{PricePerNight: 120}},
		{"with offer", RoomPrice{PricePerNight: 110, OfferPrice: &offer}},
		{"offer dropped", RoomPrice{PricePerNight: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := tt.price
			if err := SetRoomPrice(db, &price); err != nil {
				t.Fatal(err)
			}
			count, err := CountRoomPrices(db)
			if err != nil {
				t.Fatal(err)
			}
			if count != 1 {
				t.Errorf("%d room prices stored, want 1", count)
			}
			current, err := CurrentRoomPrice(db)
			if err != nil {
				t.Fatal(err)
			}
			if current.PricePerNight != tt.price.PricePerNight || current.HasOffer() != tt.price.HasOffer() {
				t.Errorf("CurrentRoomPrice() = %+v, want %+v", current, tt.price)
			}
		})
	}
}

func createGallery(t *testing.T, db *gorm.DB, folderID uint64, title string, images ...string) *Gallery {
	t.Helper()
	gallery := &Gallery{Title: title, FolderID: folderID}
	var rows []GalleryImage
	for _, img := range images {
		rows = append(rows, GalleryImage{Image: img, Thumb: "thumbs/" + img})
	}
	if err := CreateGallery(db, gallery, rows); err != nil {
		t.Fatal(err)
	}
	return gallery
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	return count
}

func TestUpdateGallery(t *testing.T) {
	db := newTestDB(t)
	folder := Folder{Name: "Rooms"}
	if err := db.Create(&folder).Error; err != nil {
		t.Fatal(err)
	}
	mine := createGallery(t, db, folder.ID, "Suite", "a.png", "b.png", "c.png")
	other := createGallery(t, db, folder.ID, "Garden", "d.png")

	var mineImages, otherImages []GalleryImage
	db.Where("gallery_id = ?", mine.ID).Order("id").Find(&mineImages)
	db.Where("gallery_id = ?", other.ID).Find(&otherImages)

	mine.Title = "Suite 2"
	removeIDs := []uint64{mineImages[0].ID, otherImages[0].ID}
	removed, err := UpdateGallery(db, mine, removeIDs, []GalleryImage{{Image: "e.png"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(removed) != 1 || removed[0].Image != "a.png" {
		t.Errorf("UpdateGallery() removed %+v, want only a.png", removed)
	}

	var got Gallery
	if err = db.Preload("Images").First(&got, mine.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.Title != "Suite 2" || len(got.Images) != 3 {
		t.Errorf("gallery after update = %q with %d images, want \"Suite 2\" with 3", got.Title, len(got.Images))
	}
	if n := countRows(t, db, &GalleryImage{}); n != 4 {
		t.Errorf("%d images stored, want 4", n)
	}
}

func TestDeleteFolder(t *testing.T) {
	db := newTestDB(t)
	folders := []Folder{{Name: "Rooms"}, {Name: "Food"}, {Name: "Empty"}}
	if err := db.Create(&folders).Error; err != nil {
		t.Fatal(err)
	}
	createGallery(t, db, folders[0].ID, "Suite", "a.png", "b.png")
	createGallery(t, db, folders[0].ID, "Double", "c.png")
	createGallery(t, db, folders[1].ID, "Breakfast", "d.png")

	removed, err := DeleteFolder(db, folders[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(removed) != 3 {
		t.Errorf("DeleteFolder() removed %d images, want 3", len(removed))
	}
	if n := countRows(t, db, &Gallery{}); n != 1 {
		t.Errorf("%d galleries left, want 1", n)
	}
	if n := countRows(t, db, &GalleryImage{}); n != 1 {
		t.Errorf("%d images left, want 1", n)
	}

	if removed, err = DeleteFolder(db, folders[2].ID); err != nil || len(removed) != 0 {
		t.Errorf("DeleteFolder() on an empty folder = %v, %v", removed, err)
	}
	if _, err = DeleteFolder(db, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteFolder() on a missing folder error = %v, want ErrNotFound", err)
	}
	if n := countRows(t, db, &Folder{}); n != 1 {
		t.Errorf("%d folders left, want 1", n)
	}
}

func TestDeleteGallery(t *testing.T) {
	db := newTestDB(t)
	folder := Folder{Name: "Rooms"}
	if err := db.Create(&folder).Error; err != nil {
		t.Fatal(err)
	}
	gallery := createGallery(t, db, folder.ID, "Suite", "a.png", "b.png")

	removed, err := DeleteGallery(db, gallery.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(removed) != 2 {
		t.Errorf("DeleteGallery() removed %d images, want 2", len(removed))
	}
	if _, err = DeleteGallery(db, gallery.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteGallery() error = %v, want ErrNotFound", err)
	}
	if n := countRows(t, db, &Folder{}); n != 1 {
		t.Errorf("folder was deleted with its gallery")
	}
}

func TestOtherPlaces(t *testing.T) {
	db := newTestDB(t)
	var ids []uint64
	for i := 0; i < 8; i++ {
		place := NearByPlace{Name: "Place", Description: "Nice", Image: "places/p.png"}
		if err := db.Create(&place).Error; err != nil {
			t.Fatal(err)
		}
		ids = append(ids, place.ID)
	}
	others, err := OtherPlaces(db, ids[7], 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(others) != 5 {
		t.Fatalf("OtherPlaces() returned %d places, want 5", len(others))
	}
	for _, p := range others {
		if p.ID == ids[7] {
			t.Errorf("OtherPlaces() includes the excluded place")
		}
	}
	if others[0].ID != ids[6] {
		t.Errorf("OtherPlaces() starts with %d, want newest %d", others[0].ID, ids[6])
	}

	random, err := RandomPlaces(db, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(random) != 3 {
		t.Errorf("RandomPlaces() returned %d places, want 3", len(random))
	}
}

func TestFolderName(t *testing.T) {
	db := newTestDB(t)
	rooms := Folder{Name: "Rooms"}
	if err := db.Create(&rooms).Error; err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name     string
		exceptID uint64
		want     bool
	}{
		{"Rooms", 0, true},
		{"Rooms", rooms.ID, false},
		{"Food", 0, false},
	}
	for _, tt := range tests {
		taken, err := FolderNameTaken(db, tt.name, tt.exceptID)
		if err != nil {
			t.Fatal(err)
		}
		if taken != tt.want {
			t.Errorf("FolderNameTaken(%q, %d) = %v, want %v", tt.name, tt.exceptID, taken, tt.want)
		}
	}
	if err := db.Create(&Folder{Name: "Rooms"}).Error; err == nil {
		t.Error("a second folder named Rooms was stored")
	}
}
