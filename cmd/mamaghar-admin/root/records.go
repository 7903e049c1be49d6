package root

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	recordcmd "github.com/mamaghar/go-admin/internal/commands/records"
	"github.com/mamaghar/go-admin/internal/payload"
)

func newStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Manage states",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a state with localized names",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := newModule(cmd)
			if err != nil {
				return err
			}
			code, _ := cmd.Flags().GetString("code")

			msg := recordcmd.CreateStateCommand{
				Names: localeNames(cmd, module, "name"),
				Code:  code,
			}
			if err := module.Commands().CreateState.Execute(cmd.Context(), msg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "state added")
			return nil
		},
	}
	addLocaleFlags(add, "name", "state name")
	add.Flags().String("code", "", "shared state code, e.g. GJ01")
	_ = add.MarkFlagRequired("code")

	cmd.AddCommand(add)
	return cmd
}

func newDistrictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "district",
		Short: "Manage districts",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a district under a state",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := newModule(cmd)
			if err != nil {
				return err
			}
			code, _ := cmd.Flags().GetString("code")
			stateID, _ := cmd.Flags().GetString("state")

			msg := recordcmd.CreateDistrictCommand{
				Names:   localeNames(cmd, module, "name"),
				Code:    code,
				StateID: stateID,
			}
			if err := module.Commands().CreateDistrict.Execute(cmd.Context(), msg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "district added")
			return nil
		},
	}
	addLocaleFlags(add, "name", "district name")
	add.Flags().String("code", "", "shared district code")
	add.Flags().String("state", "", "parent state id")
	_ = add.MarkFlagRequired("code")
	_ = add.MarkFlagRequired("state")

	cmd.AddCommand(add)
	return cmd
}

func newCityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "city",
		Short: "Manage cities (talukas)",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a city in one locale",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := newModule(cmd)
			if err != nil {
				return err
			}
			locale, _ := cmd.Flags().GetString("locale")
			name, _ := cmd.Flags().GetString("name")
			code, _ := cmd.Flags().GetString("code")
			districtID, _ := cmd.Flags().GetString("district")

			msg := recordcmd.CreateCityCommand{
				Locale:     locale,
				Name:       name,
				Code:       code,
				DistrictID: districtID,
			}
			if err := module.Commands().CreateCity.Execute(cmd.Context(), msg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "city added")
			return nil
		},
	}
	add.Flags().String("locale", "en", "locale the name is written in")
	add.Flags().String("name", "", "city name")
	add.Flags().String("code", "", "shared city code")
	add.Flags().String("district", "", "parent district id")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("code")
	_ = add.MarkFlagRequired("district")

	cmd.AddCommand(add)
	return cmd
}

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage post categories",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a post category with localized labels and hints",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := newModule(cmd)
			if err != nil {
				return err
			}
			postType, _ := cmd.Flags().GetString("type")
			imagePath, _ := cmd.Flags().GetString("image")

			image, err := loadAttachment(imagePath)
			if err != nil {
				return err
			}

			msg := recordcmd.CreateCategoryCommand{
				Names:        localeNames(cmd, module, "name"),
				TitleHints:   localeNames(cmd, module, "title-hint"),
				DetailsHints: localeNames(cmd, module, "details-hint"),
				PostType:     postType,
				Image:        image,
			}
			if err := module.Commands().CreateCategory.Execute(cmd.Context(), msg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "category added")
			return nil
		},
	}
	addLocaleFlags(add, "name", "category name")
	addLocaleFlags(add, "title-hint", "post title hint")
	addLocaleFlags(add, "details-hint", "post details hint")
	add.Flags().String("type", "", "post type the category belongs to")
	add.Flags().String("image", "", "path to the category image")
	_ = add.MarkFlagRequired("type")

	cmd.AddCommand(add)
	return cmd
}

func newSubCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subcategory",
		Short: "Manage post subcategories",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a subcategory under a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := newModule(cmd)
			if err != nil {
				return err
			}
			categoryID, _ := cmd.Flags().GetString("category")
			imagePath, _ := cmd.Flags().GetString("image")

			image, err := loadAttachment(imagePath)
			if err != nil {
				return err
			}

			msg := recordcmd.CreateSubCategoryCommand{
				Names:        localeNames(cmd, module, "name"),
				Descriptions: localeNames(cmd, module, "description"),
				CategoryID:   categoryID,
				Image:        image,
			}
			if err := module.Commands().CreateSubCategory.Execute(cmd.Context(), msg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "subcategory added")
			return nil
		},
	}
	addLocaleFlags(add, "name", "subcategory name")
	addLocaleFlags(add, "description", "subcategory description")
	add.Flags().String("category", "", "parent category id")
	add.Flags().String("image", "", "path to the subcategory image")
	_ = add.MarkFlagRequired("category")

	cmd.AddCommand(add)
	return cmd
}

func loadAttachment(path string) (*payload.Attachment, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &payload.Attachment{
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}
